package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/queue"
	"github.com/ultroidx/movie-platform/internal/repository"
	queue_publisher "github.com/ultroidx/movie-platform/internal/service"
)

// ContactHandler serves the public contact form and the admin triage
// endpoints.  Submissions additionally emit a broker event for downstream
// consumers; broker failures never fail the submission.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

func NewContactHandler(co *repository.ContactRepo) *ContactHandler {
	return &ContactHandler{Contacts: co}
}

type submitContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a contact form submission.  Public, no auth.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req submitContactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/subject/message required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contact, err := h.Contacts.Create(ctx, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit failed"})
	}

	// Best effort: the broker being down must not fail the form.
	_ = queue_publisher.PublishContactSubmitted(ctx, queue.ContactSubmittedEvent{
		ContactID:   contact.ID.Hex(),
		Name:        contact.Name,
		Email:       contact.Email,
		Subject:     contact.Subject,
		SubmittedAt: contact.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "contact form submitted successfully",
		"contact": contact,
	})
}

// All lists every submission, newest first (admin only).
func (h *ContactHandler) All(c echo.Context) error {
	return h.list(c, h.Contacts.List)
}

// Pending lists submissions still awaiting triage (admin only).
func (h *ContactHandler) Pending(c echo.Context) error {
	return h.list(c, h.Contacts.Pending)
}

// Get returns one submission by id (admin only).
func (h *ContactHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contact, err := h.Contacts.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, contact)
}

type contactStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves a submission between triage states (admin only).
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req contactStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Contacts.UpdateStatus(ctx, c.Param("id"), req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// MarkReplied flags a submission as replied and resolves it (admin only).
func (h *ContactHandler) MarkReplied(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Contacts.MarkReplied(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "marked as replied"})
}

// Delete removes a submission (admin only).
func (h *ContactHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Contacts.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "contact deleted"})
}

func (h *ContactHandler) list(c echo.Context, query func(ctx context.Context, skip, limit int64) ([]model.Contact, error)) error {
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contacts, err := query(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, contacts)
}

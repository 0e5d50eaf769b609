package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/model"
	"github.com/ultroidx/movie-platform/internal/repository"
)

// ChatHandler serves the user support chats.  Every user owns at most one
// chat thread with the admin team; admin-side operations are mounted behind
// the admin role middleware in the router.
type ChatHandler struct {
	Chats *repository.ChatRepo
}

func NewChatHandler(ch *repository.ChatRepo) *ChatHandler {
	return &ChatHandler{Chats: ch}
}

// MyChat returns the current user's chat, creating it on first access.
func (h *ChatHandler) MyChat(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chat, err := h.Chats.FindOrCreateByUser(ctx, currentUserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, chat)
}

// Get returns one chat by id, readable by its owner or by admins.
func (h *ChatHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chat := h.loadAuthorized(ctx, c)
	if chat == nil {
		return nil
	}
	return c.JSON(http.StatusOK, chat)
}

// All lists every chat, newest activity first (admin only).
func (h *ChatHandler) All(c echo.Context) error {
	skip, limit := pageParams(c, 20)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chats, err := h.Chats.List(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, chats)
}

type sendMessageReq struct {
	Message string `json:"message"`
}

// SendMessage appends a message from the current user or an admin.  User
// messages raise the unread counter, admin replies clear it.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if chat := h.loadAuthorized(ctx, c); chat == nil {
		return nil
	}

	if err := h.Chats.AddMessage(ctx, c.Param("id"), currentUserID(c), currentRole(c), req.Message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "send message failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "message sent"})
}

// MarkRead resets the unread counter and flags all messages read (admin only).
func (h *ChatHandler) MarkRead(c echo.Context) error {
	return h.adminOp(c, "messages marked as read", h.Chats.MarkRead)
}

// Close deactivates a chat (admin only).
func (h *ChatHandler) Close(c echo.Context) error {
	return h.adminOp(c, "chat closed", h.Chats.Close)
}

// Delete removes a chat thread entirely (admin only).
func (h *ChatHandler) Delete(c echo.Context) error {
	return h.adminOp(c, "chat deleted", h.Chats.Delete)
}

// UnreadCount returns how many chats have unanswered user messages (admin only).
func (h *ChatHandler) UnreadCount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Chats.CountUnread(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": n})
}

// loadAuthorized fetches the chat at :id and enforces owner-or-admin access.
// On failure it writes the error response and returns nil.
func (h *ChatHandler) loadAuthorized(ctx context.Context, c echo.Context) *model.Chat {
	chat, err := h.Chats.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "chat not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return nil
	}
	if currentRole(c) != model.RoleAdmin && chat.UserID != currentUserID(c) {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized"})
		return nil
	}
	return chat
}

func (h *ChatHandler) adminOp(c echo.Context, okMsg string, op func(ctx context.Context, id string) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := op(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "chat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": okMsg})
}

package newsfeed

import (
	"time"

	"github.com/ultroidx/movie-platform/internal/model"
)

// mockArticles is the offline fallback set.  Titles double as dedup keys so
// repeated fallbacks never pile up duplicates in the store.
var mockArticles = []struct {
	title    string
	content  string
	author   string
	category string
	imageURL string
}{
	{
		"Marvel Studios Announces Phase 6 Lineup",
		"Marvel Studios has officially announced the complete lineup for Phase 6 of the MCU, featuring exciting new characters and storylines that will shape the future of the franchise.",
		"Entertainment Weekly", "Movies",
		"https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=800",
	},
	{
		"Christopher Nolan's Next Film Gets Release Date",
		"Warner Bros. has announced the release date for Christopher Nolan's highly anticipated next project, which promises to be another mind-bending cinematic experience.",
		"Variety", "Movies",
		"https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=800",
	},
	{
		"Studio Ghibli Announces New Animated Feature",
		"The legendary Studio Ghibli has revealed plans for a new animated feature film, marking their return to original storytelling after several years.",
		"Anime News Network", "Anime",
		"https://images.unsplash.com/photo-1578632767115-351597cf2477?w=800",
	},
	{
		"Box Office: Latest Blockbuster Breaks Records",
		"The latest superhero blockbuster has shattered box office records worldwide, becoming the highest-grossing film of the year in just two weeks.",
		"Box Office Mojo", "Movies",
		"https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800",
	},
	{
		"Streaming Wars: New Platform Launches",
		"A new streaming platform has entered the competitive market, promising exclusive content and competitive pricing to attract subscribers.",
		"The Hollywood Reporter", "TV Series",
		"https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=800",
	},
	{
		"Oscar Nominations Announced",
		"The Academy has announced this year's Oscar nominations, with several surprise inclusions and notable snubs sparking conversation across the industry.",
		"Deadline", "Movies",
		"https://images.unsplash.com/photo-1485846234645-a62644f84728?w=800",
	},
	{
		"Popular Anime Series Gets Live-Action Adaptation",
		"A beloved anime series is being adapted into a live-action format, with production set to begin next year and a star-studded cast already confirmed.",
		"IGN", "Anime",
		"https://images.unsplash.com/photo-1607604276583-eef5d076aa5f?w=800",
	},
	{
		"Director Wins Lifetime Achievement Award",
		"Legendary filmmaker receives prestigious lifetime achievement award, celebrating decades of groundbreaking work in cinema.",
		"IndieWire", "Movies",
		"https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=800",
	},
	{
		"Gaming Industry Sees Record Growth",
		"The gaming industry has reported record-breaking growth this year, with several blockbuster releases driving unprecedented engagement.",
		"GameSpot", "Gaming",
		"https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800",
	},
	{
		"Film Festival Announces Lineup",
		"Major international film festival reveals its official selection, featuring diverse voices and innovative storytelling from around the world.",
		"Screen Daily", "Movies",
		"https://images.unsplash.com/photo-1574267432644-f610f5b17752?w=800",
	},
	{
		"Sequel to Hit Movie Confirmed",
		"Studio confirms sequel to last year's surprise hit, with original cast and director returning for the highly anticipated follow-up.",
		"Collider", "Movies",
		"https://images.unsplash.com/photo-1594908900066-3f47337549d8?w=800",
	},
	{
		"Streaming Service Announces Original Series",
		"Major streaming platform unveils slate of original series, featuring high-profile creators and ambitious storytelling.",
		"TV Line", "TV Series",
		"https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=800",
	},
}

// MockArticles returns the fallback set truncated to limit, stamped with the
// current time.
func MockArticles(limit int) []model.NewsArticle {
	if limit < 0 {
		limit = 0
	}
	if limit > len(mockArticles) {
		limit = len(mockArticles)
	}

	now := time.Now().UTC()
	out := make([]model.NewsArticle, 0, limit)
	for _, a := range mockArticles[:limit] {
		out = append(out, model.NewsArticle{
			Title:       a.title,
			Content:     a.content,
			Author:      a.author,
			Category:    a.category,
			ImageURL:    a.imageURL,
			SourceURL:   "#",
			PublishedAt: now,
			CreatedAt:   now,
			AutoFetched: true,
		})
	}
	return out
}

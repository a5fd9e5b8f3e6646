package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/foundation-portal/internal/errors"
	"github.com/pribylovaa/foundation-portal/internal/models"
)

// JSON-представления списков витрины.

type newsJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"image_url"`
	ImageCount  int       `json:"image_count"`
	PublishedAt time.Time `json:"published_at"`
}

type partnerJSON struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	LogoURL    string  `json:"logo_url,omitempty"`
	WebsiteURL *string `json:"website_url,omitempty"`
	SortOrder  int     `json:"sort_order"`
}

type slideJSON struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func newsFromModels(in []models.NewsItem) listResponse[newsJSON] {
	out := make([]newsJSON, 0, len(in))
	for _, n := range in {
		out = append(out, newsJSON{
			ID:          n.ID.String(),
			Title:       n.Title,
			Category:    n.Category,
			Excerpt:     n.Excerpt,
			ImageURL:    n.ImageURL,
			ImageCount:  n.ImageCount,
			PublishedAt: n.PublishedAt,
		})
	}
	return listResponse[newsJSON]{Items: out}
}

func partnersFromModels(in []models.Partner) listResponse[partnerJSON] {
	out := make([]partnerJSON, 0, len(in))
	for _, p := range in {
		out = append(out, partnerJSON{
			ID:         p.ID.String(),
			Name:       p.Name,
			LogoURL:    p.LogoURL,
			WebsiteURL: p.WebsiteURL,
			SortOrder:  p.SortOrder,
		})
	}
	return listResponse[partnerJSON]{Items: out}
}

func slidesFromModels(in []models.Slide) listResponse[slideJSON] {
	out := make([]slideJSON, 0, len(in))
	for _, s := range in {
		out = append(out, slideJSON{
			ID:        s.ID.String(),
			ImageURL:  s.ImageURL,
			Title:     s.Title,
			Subtitle:  s.Subtitle,
			SortOrder: s.SortOrder,
		})
	}
	return listResponse[slideJSON]{Items: out}
}

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListNews(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsFromModels(items))
}

func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListPartners(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, partnersFromModels(items))
}

func (h *Handlers) ListSlides(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListSlides(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, slidesFromModels(items))
}

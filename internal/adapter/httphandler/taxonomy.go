package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type taxonomyService interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, userID, id string) error

	ListBrands(ctx context.Context, userID string) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, userID, name string) (domain.Brand, error)
	DeleteBrand(ctx context.Context, userID, id string) error
}

type TaxonomyHandler struct {
	svc taxonomyService
}

func RegisterTaxonomy(mux *http.ServeMux, svc taxonomyService) {
	h := TaxonomyHandler{svc}
	mux.HandleFunc("GET /api/categories", h.GetCategories)
	mux.HandleFunc("POST /api/categories", h.PostCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", h.DeleteCategory)
	mux.HandleFunc("GET /api/brands", h.GetBrands)
	mux.HandleFunc("POST /api/brands", h.PostBrand)
	mux.HandleFunc("DELETE /api/brands/{id}", h.DeleteBrand)
}

func (h TaxonomyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.svc.ListCategories(r.Context(), UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	out := make([]Taxonomy, len(cs))
	for i, c := range cs {
		out[i] = toTaxonomy(c.ID, c.Name, c.UserID, c.CreatedAt)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h TaxonomyHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.PostCategory"
	log := slog.With("op", op)

	var req NameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaxonomy(c.ID, c.Name, c.UserID, c.CreatedAt))
	log.Info("category created", "categoryID", c.ID)
}

func (h TaxonomyHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.DeleteCategory"
	log := slog.With("op", op)

	id := r.PathValue("id")
	err := h.svc.DeleteCategory(r.Context(), UserID(r.Context()), id)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("category deleted", "categoryID", id)
}

func (h TaxonomyHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.GetBrands"
	log := slog.With("op", op)

	bs, err := h.svc.ListBrands(r.Context(), UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	out := make([]Taxonomy, len(bs))
	for i, b := range bs {
		out[i] = toTaxonomy(b.ID, b.Name, b.UserID, b.CreatedAt)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h TaxonomyHandler) PostBrand(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.PostBrand"
	log := slog.With("op", op)

	var req NameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	b, err := h.svc.CreateBrand(r.Context(), UserID(r.Context()), req.Name)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaxonomy(b.ID, b.Name, b.UserID, b.CreatedAt))
	log.Info("brand created", "brandID", b.ID)
}

func (h TaxonomyHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	const op = "TaxonomyHandler.DeleteBrand"
	log := slog.With("op", op)

	id := r.PathValue("id")
	err := h.svc.DeleteBrand(r.Context(), UserID(r.Context()), id)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("brand deleted", "brandID", id)
}

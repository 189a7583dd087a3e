package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type productsService interface {
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, userID string, d domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, userID, id string, d domain.ProductDraft) (domain.Product, error)
	DeleteProduct(ctx context.Context, userID, id string) error
}

type ProductsHandler struct {
	svc productsService
}

func RegisterProducts(mux *http.ServeMux, svc productsService) {
	h := ProductsHandler{svc}
	mux.HandleFunc("GET /api/products", h.GetProducts)
	mux.HandleFunc("POST /api/products", h.PostProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.PutProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.DeleteProduct)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.svc.ListProducts(r.Context(), UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostProduct"
	log := slog.With("op", op)

	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), UserID(r.Context()), req.toDraft())
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProduct(p))
	log.Info("product created", "productID", p.ID)
}

func (h ProductsHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutProduct"
	log := slog.With("op", op)

	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProduct(
		r.Context(), UserID(r.Context()), r.PathValue("id"), req.toDraft(),
	)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProduct(p))
	log.Info("product updated", "productID", p.ID)
}

func (h ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.DeleteProduct"
	log := slog.With("op", op)

	id := r.PathValue("id")
	err := h.svc.DeleteProduct(r.Context(), UserID(r.Context()), id)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("product deleted", "productID", id)
}

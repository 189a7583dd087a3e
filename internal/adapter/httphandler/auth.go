package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/stokpilot/stokpilot/internal/core/domain"
)

type authService interface {
	Register(ctx context.Context, email, name, password string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

type AuthHandler struct {
	svc authService
}

func RegisterAuth(mux *http.ServeMux, svc authService) {
	h := AuthHandler{svc}
	mux.HandleFunc("POST /api/auth/register", h.PostRegister)
	mux.HandleFunc("POST /api/auth/login", h.PostLogin)
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"
	log := slog.With("op", op)

	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, token, err := h.svc.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUser(u)})
	log.Info("user registered", "userID", u.ID)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUser(u)})
	log.Info("user logged in", "userID", u.ID)
}

package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// HTTPHandler exposes register/login endpoints that mint session tokens for
// the WebSocket gateway.
type HTTPHandler struct {
	service Service
}

func NewHTTPHandler(service Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/auth/register", h.handleRegister)
	mux.HandleFunc("/auth/login", h.handleLogin)
}

type credentialRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	Token       string `json:"token"`
}

func (h *HTTPHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	h.handleCredential(w, r, h.service.Register)
}

func (h *HTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.handleCredential(w, r, h.service.Login)
}

func (h *HTTPHandler) handleCredential(
	w http.ResponseWriter,
	r *http.Request,
	fn func(username, password string) (Identity, string, error),
) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity, token, err := fn(req.Username, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredential):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	case errors.Is(err, ErrUsernameTaken):
		http.Error(w, "username already taken", http.StatusConflict)
		return
	case err != nil:
		log.Printf("[Auth] credential handler failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sessionResponse{
		PlayerID:    identity.PlayerID,
		DisplayName: identity.DisplayName,
		Token:       token,
	})
}

package ledger

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"pokertab/internal/auth"
)

// HTTPHandler exposes a read-only balance endpoint. The ledger is an
// external mirror of table results, so this is the only query surface.
type HTTPHandler struct {
	auth auth.Service
	sink Sink
}

func NewHTTPHandler(authService auth.Service, sink Sink) *HTTPHandler {
	return &HTTPHandler{auth: authService, sink: sink}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ledger/balance", h.handleBalance)
}

type balanceResponse struct {
	PlayerID string `json:"playerId"`
	Balance  int    `json:"balance"`
}

func (h *HTTPHandler) handleBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	identity, err := h.auth.Resolve(token)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	balance, err := h.sink.Balance(r.Context(), identity.PlayerID)
	if err != nil {
		log.Printf("[Ledger] balance query failed for %s: %v", identity.PlayerID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(balanceResponse{
		PlayerID: identity.PlayerID,
		Balance:  balance,
	})
}

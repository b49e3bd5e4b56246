package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pokertab/holdem"
	"pokertab/internal/auth"
	"pokertab/internal/gateway"
	"pokertab/internal/ledger"
)

func main() {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	authService, authMode, err := auth.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Server] failed to init auth service: %v", err)
	}
	defer authService.Close()

	sink, ledgerMode, err := ledger.NewSinkFromEnv()
	if err != nil {
		log.Fatalf("[Server] failed to init ledger sink: %v", err)
	}
	defer sink.Close()

	registry, err := holdem.NewRegistry(holdem.DefaultConfig(), sink)
	if err != nil {
		log.Fatalf("[Server] failed to init table registry: %v", err)
	}
	gw := gateway.New(registry, authService)
	authHTTP := auth.NewHTTPHandler(authService)
	ledgerHTTP := ledger.NewHTTPHandler(authService, sink)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	authHTTP.RegisterRoutes(mux)
	ledgerHTTP.RegisterRoutes(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("[Server] auth mode: %s", authMode)
	log.Printf("[Server] ledger mode: %s", ledgerMode)
	log.Printf("[Server] listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("[Server] failed to start: %v", err)
	}
}

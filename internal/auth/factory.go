package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewServiceFromEnv selects the auth backend from AUTH_MODE:
// "memory" (default) or "sqlite" (path from AUTH_SQLITE_PATH).
func NewServiceFromEnv() (Service, string, error) {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_MODE")))
	switch mode {
	case "", "memory":
		return NewMemoryService(), "memory", nil
	case "sqlite", "local":
		dbPath := strings.TrimSpace(os.Getenv("AUTH_SQLITE_PATH"))
		if dbPath == "" {
			dbPath = filepath.Join("data", defaultAuthDBName)
		}
		service, err := NewSQLiteService(dbPath)
		if err != nil {
			return nil, "", err
		}
		return service, "sqlite", nil
	default:
		return nil, "", fmt.Errorf("unknown AUTH_MODE %q", mode)
	}
}

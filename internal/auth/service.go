package auth

import "errors"

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUsernameTaken     = errors.New("username already taken")
)

// Identity is a durable player identity resolved from a connection
// credential.
type Identity struct {
	PlayerID    string
	DisplayName string
}

// Service is the identity-resolver contract consumed by the gateway and the
// HTTP handlers. Resolve maps an opaque session token to a stable identity;
// an invalid token fails the connection attempt.
type Service interface {
	Register(username, password string) (Identity, string, error)
	Login(username, password string) (Identity, string, error)
	Resolve(token string) (Identity, error)
	Close() error
}

package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memoryAccount struct {
	playerID     string
	username     string
	passwordHash []byte
}

// MemoryService keeps accounts and sessions in process memory. Suited to
// tests and single-node development runs.
type MemoryService struct {
	mu       sync.Mutex
	accounts map[string]*memoryAccount // username -> account
	sessions map[string]string         // token -> username
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		accounts: make(map[string]*memoryAccount),
		sessions: make(map[string]string),
	}
}

func (s *MemoryService) Register(username, password string) (Identity, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, "", ErrInvalidCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[username]; exists {
		return Identity{}, "", ErrUsernameTaken
	}
	acct := &memoryAccount{
		playerID:     uuid.NewString(),
		username:     username,
		passwordHash: hash,
	}
	s.accounts[username] = acct

	token := uuid.NewString()
	s.sessions[token] = username
	return Identity{PlayerID: acct.playerID, DisplayName: username}, token, nil
}

func (s *MemoryService) Login(username, password string) (Identity, string, error) {
	s.mu.Lock()
	acct := s.accounts[strings.TrimSpace(username)]
	s.mu.Unlock()

	if acct == nil {
		return Identity{}, "", ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return Identity{}, "", ErrInvalidCredential
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = acct.username
	s.mu.Unlock()
	return Identity{PlayerID: acct.playerID, DisplayName: acct.username}, token, nil
}

func (s *MemoryService) Resolve(token string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok := s.sessions[token]
	if !ok {
		return Identity{}, ErrInvalidCredential
	}
	acct := s.accounts[username]
	if acct == nil {
		return Identity{}, ErrInvalidCredential
	}
	return Identity{PlayerID: acct.playerID, DisplayName: acct.username}, nil
}

func (s *MemoryService) Close() error { return nil }

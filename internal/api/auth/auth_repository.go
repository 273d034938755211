package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/petdirectory/demo-pet-api/config"
)

var _ CredentialStore = (*StaticCredentialStore)(nil)
var _ CredentialStore = (*HashedCredentialStore)(nil)

// CredentialStore validates a username/password pair. Implementations are
// injectable so a real deployment can swap the demo list for an external or
// hashed store without touching the token issuer.
type CredentialStore interface {
	// Authenticate returns the matching user or ErrUnauthenticated.
	// Username comparison is case-insensitive; the first match wins.
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

// NewCredentialStore builds the store the config asks for.
func NewCredentialStore(cfg config.AuthConfig) CredentialStore {
	users := make([]User, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		users = append(users, User{Username: u.Username, Password: u.Password, Role: u.Role})
	}
	if cfg.HashedPasswords {
		return &HashedCredentialStore{users: users}
	}
	return &StaticCredentialStore{users: users}
}

// StaticCredentialStore compares passwords in plaintext. Demo-grade only:
// it mirrors the mock nature of this service and must not guard anything real.
type StaticCredentialStore struct {
	users []User
}

func NewStaticCredentialStore(users []User) *StaticCredentialStore {
	return &StaticCredentialStore{users: users}
}

func (s *StaticCredentialStore) Authenticate(_ context.Context, username, password string) (*User, error) {
	for i := range s.users {
		u := &s.users[i]
		if strings.EqualFold(u.Username, username) && u.Password == password {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrUnauthenticated
}

// HashedCredentialStore expects bcrypt hashes in the password field. This is
// the required hardening for any deployment beyond demonstration.
type HashedCredentialStore struct {
	users []User
}

func NewHashedCredentialStore(users []User) *HashedCredentialStore {
	return &HashedCredentialStore{users: users}
}

func (s *HashedCredentialStore) Authenticate(_ context.Context, username, password string) (*User, error) {
	for i := range s.users {
		u := &s.users[i]
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
			return nil, ErrUnauthenticated
		}
		out := *u
		return &out, nil
	}
	return nil, ErrUnauthenticated
}

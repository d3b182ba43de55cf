// Package auth gates the admin area. There is a single admin identity whose
// credentials come from the environment; the check is a plain string
// comparison because this portal simulates authentication rather than
// providing it.
package auth

import (
	"errors"
	"log"
	"time"

	"payport/internal/repositories"
	"payport/internal/utils"
)

// ErrInvalidCredentials is returned on any failed login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

// DefaultTokenTTL bounds how long an admin session token stays usable.
const DefaultTokenTTL = 12 * time.Hour

type Service interface {
	Login(username, password string) (string, error)
	Logout() error
	SessionActive() (bool, error)
}

type service struct {
	records  repositories.RecordRepository
	username string
	password string
	tokenTTL time.Duration
}

// NewService creates a new auth service with the configured admin credentials.
func NewService(records repositories.RecordRepository, username, password string) Service {
	if records == nil {
		panic("records repository is required")
	}
	return &service{
		records:  records,
		username: username,
		password: password,
		tokenTTL: DefaultTokenTTL,
	}
}

// Login checks the submitted credentials. On success it raises the persisted
// session flag and returns a signed token; on failure the session state is
// left untouched.
func (s *service) Login(username, password string) (string, error) {
	if username != s.username || password != s.password {
		log.Printf("admin login failed for username %q", username)
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(username, s.tokenTTL)
	if err != nil {
		return "", err
	}

	if err := s.records.SetSessionFlag(true); err != nil {
		return "", err
	}
	return token, nil
}

// Logout lowers the session flag. Outstanding tokens stop being accepted
// because the middleware cross-checks the flag on every request.
func (s *service) Logout() error {
	return s.records.SetSessionFlag(false)
}

// SessionActive reports the persisted session flag.
func (s *service) SessionActive() (bool, error) {
	return s.records.SessionFlag()
}

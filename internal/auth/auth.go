// Package auth provides the authentication provider for the storefront.
// The only implementation is a simulated one: there is no server-side
// account store, so it validates locally and synthesizes a user record.
// A real provider would satisfy the same interface.
package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/abgdnv/glowmart/internal/model"
	"github.com/abgdnv/glowmart/pkg/config"
)

// Provider defines the authentication operations the storefront depends on.
type Provider interface {
	// Login validates credentials and returns the user record.
	// Returns a *ValidationError with a display-ready message on rejection.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// Register validates the registration request and returns the new user.
	// Returns a *ValidationError with a display-ready message on rejection.
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)
}

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidationError is a locally detected rejection carrying a human-readable
// message that the caller surfaces verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	tokenPrefix  = "mock-jwt-token-"
	avatarPrefix = "https://i.pravatar.cc/150?u="
)

// Mock is a fake Provider. It simulates network latency with a fixed delay
// and derives the user record deterministically from the email address.
type Mock struct {
	latency     time.Duration
	minPassword int
	now         func() time.Time
}

var _ Provider = (*Mock)(nil)

// NewMock creates a Mock provider from configuration.
func NewMock(cfg config.AuthConfig) *Mock {
	return &Mock{
		latency:     cfg.Latency,
		minPassword: cfg.MinPasswordLength,
		now:         time.Now,
	}
}

// Login validates the credentials locally and synthesizes the user record.
func (m *Mock) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}
	if len(password) < m.minPassword {
		return nil, &ValidationError{Message: "Password must be at least " + strconv.Itoa(m.minPassword) + " characters"}
	}
	return &model.User{
		ID:        1,
		FirstName: "Beauty",
		LastName:  "Lover",
		Email:     email,
		Username:  localPart(email),
		Image:     avatarPrefix + email,
		Token:     m.token(),
	}, nil
}

// Register validates the registration form locally and synthesizes the user
// record. The full name is split into first name (first token) and last name
// (remaining tokens joined by spaces, empty if none).
func (m *Mock) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, &ValidationError{Message: "All fields are required"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, &ValidationError{Message: "Passwords do not match"}
	}
	if len(req.Password) < m.minPassword {
		return nil, &ValidationError{Message: "Password must be at least " + strconv.Itoa(m.minPassword) + " characters"}
	}

	firstName, lastName := splitFullName(req.FullName)
	return &model.User{
		ID:        m.now().UnixMilli(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Username:  localPart(req.Email),
		Image:     avatarPrefix + req.Email,
		Token:     m.token(),
	}, nil
}

// sleep simulates network latency, honoring context cancellation.
func (m *Mock) sleep(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// token is a fixed prefix plus the current timestamp. Not cryptographically
// meaningful.
func (m *Mock) token() string {
	return tokenPrefix + strconv.FormatInt(m.now().UnixMilli(), 10)
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

func splitFullName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/abgdnv/glowmart/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMock() *Mock {
	m := NewMock(config.AuthConfig{Latency: 0, MinPasswordLength: 6})
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return m
}

func Test_Mock_Login(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		password    string
		expectError string
	}{
		{
			name:     "Success",
			email:    "ana@example.com",
			password: "secret123",
		},
		{
			name:        "Missing email",
			email:       "",
			password:    "secret123",
			expectError: "Email and password are required",
		},
		{
			name:        "Missing password",
			email:       "ana@example.com",
			password:    "",
			expectError: "Email and password are required",
		},
		{
			name:        "Password too short",
			email:       "ana@example.com",
			password:    "12345",
			expectError: "Password must be at least 6 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := newTestMock()
			// when
			user, err := m.Login(context.Background(), tc.email, tc.password)
			// then
			if tc.expectError != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.expectError, validationErr.Message)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana", user.Username)
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Equal(t, "https://i.pravatar.cc/150?u=ana@example.com", user.Image)
			assert.Equal(t, "mock-jwt-token-1700000000000", user.Token)
		})
	}
}

func Test_Mock_Register(t *testing.T) {
	valid := RegisterRequest{
		FullName:        "Ana Maria Lopez",
		Email:           "ana@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	testCases := []struct {
		name        string
		mutate      func(r *RegisterRequest)
		expectError string
	}{
		{
			name:   "Success",
			mutate: func(*RegisterRequest) {},
		},
		{
			name:        "Missing field",
			mutate:      func(r *RegisterRequest) { r.Email = "" },
			expectError: "All fields are required",
		},
		{
			name:        "Password mismatch",
			mutate:      func(r *RegisterRequest) { r.ConfirmPassword = "different1" },
			expectError: "Passwords do not match",
		},
		{
			name: "Password too short",
			mutate: func(r *RegisterRequest) {
				r.Password = "12345"
				r.ConfirmPassword = "12345"
			},
			expectError: "Password must be at least 6 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := newTestMock()
			req := valid
			tc.mutate(&req)
			// when
			user, err := m.Register(context.Background(), req)
			// then
			if tc.expectError != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.expectError, validationErr.Message)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", user.FirstName)
			assert.Equal(t, "Maria Lopez", user.LastName)
			assert.Equal(t, "ana", user.Username)
			assert.Equal(t, "mock-jwt-token-1700000000000", user.Token)
		})
	}
}

func Test_Mock_Register_NameSplitting(t *testing.T) {
	testCases := []struct {
		name              string
		fullName          string
		expectedFirstName string
		expectedLastName  string
	}{
		{
			name:              "Single token - empty last name",
			fullName:          "Ana",
			expectedFirstName: "Ana",
			expectedLastName:  "",
		},
		{
			name:              "Multiple tokens - rest joined",
			fullName:          "Ana Maria Lopez",
			expectedFirstName: "Ana",
			expectedLastName:  "Maria Lopez",
		},
		{
			name:              "Surrounding whitespace is ignored",
			fullName:          "  Ana   Lopez  ",
			expectedFirstName: "Ana",
			expectedLastName:  "Lopez",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := newTestMock()
			// when
			user, err := m.Register(context.Background(), RegisterRequest{
				FullName:        tc.fullName,
				Email:           "ana@example.com",
				Password:        "secret123",
				ConfirmPassword: "secret123",
			})
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFirstName, user.FirstName)
			assert.Equal(t, tc.expectedLastName, user.LastName)
		})
	}
}

func Test_Mock_Login_ContextCancelled(t *testing.T) {
	// given
	m := NewMock(config.AuthConfig{Latency: time.Minute, MinPasswordLength: 6})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// when
	user, err := m.Login(ctx, "ana@example.com", "secret123")
	// then
	assert.Nil(t, user)
	assert.ErrorIs(t, err, context.Canceled)
}

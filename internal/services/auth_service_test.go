package services

import (
	"context"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	adminUser := &domain.User{
		ID:       "u1",
		Email:    "db-admin@example.com",
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:       "env credential pair skips the user table",
			email:      "env-admin@example.com",
			password:   "env-pass",
			setupMocks: func(*mocks.MockUserRepository) {},
		},
		{
			name:     "db admin with bcrypt password",
			email:    "db-admin@example.com",
			password: "s3cret",
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "db-admin@example.com").Return(adminUser, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "db-admin@example.com",
			password: "nope",
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "db-admin@example.com").Return(adminUser, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			email:    "ghost@example.com",
			password: "whatever",
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "non-admin role is rejected",
			email:    "user@example.com",
			password: "s3cret",
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&domain.User{
					ID:       "u2",
					Email:    "user@example.com",
					Password: string(hash),
					Role:     "customer",
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "empty credentials",
			email:         "",
			password:      "",
			setupMocks:    func(*mocks.MockUserRepository) {},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockUserRepository)
			tt.setupMocks(repo)

			svc := NewAuthService(repo, "test-secret", "env-admin@example.com", "env-pass")
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				email, err := svc.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.email, email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", "admin@example.com", "pass")
	other := NewAuthService(nil, "other-secret", "admin@example.com", "pass")

	token, err := svc.Login(context.Background(), "admin@example.com", "pass")
	assert.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.EqualError(t, err, "invalid or expired token")

	_, err = svc.VerifyToken("not-a-token")
	assert.EqualError(t, err, "invalid or expired token")
}

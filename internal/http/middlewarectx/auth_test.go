package middlewarectx_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
)

// TokenValidatorMock реализует интерфейс middlewarectx.TokenValidator
type TokenValidatorMock struct {
	mock.Mock
}

func (m *TokenValidatorMock) ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*jwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*TokenValidatorMock)
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "заголовок отсутствует",
			authHeader:     "",
			setupMock:      func(_ *TokenValidatorMock) {},
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     "Basic abc123",
			setupMock:      func(_ *TokenValidatorMock) {},
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:       "невалидный токен",
			authHeader: "Bearer bad-token",
			setupMock: func(m *TokenValidatorMock) {
				m.On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, fmt.Errorf("jwt.ParseToken: %w", jwt.ErrInvalidToken))
			},
			wantStatus:     http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:       "просроченный токен",
			authHeader: "Bearer expired-token",
			setupMock: func(m *TokenValidatorMock) {
				m.On("ValidateToken", mock.Anything, "expired-token").
					Return(nil, fmt.Errorf("jwt.ParseToken: %w", jwt.ErrExpiredToken))
			},
			wantStatus:     http.StatusForbidden,
			wantNextCalled: false,
		},
		{
			name:       "валидный токен",
			authHeader: "Bearer good-token",
			setupMock: func(m *TokenValidatorMock) {
				m.On("ValidateToken", mock.Anything, "good-token").
					Return(&jwt.CustomClaims{UserID: 7, Email: "alice@example.com"}, nil)
			},
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validatorMock := new(TokenValidatorMock)
			tt.setupMock(validatorMock)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				userID, ok := r.Context().Value(middlewarectx.UserID).(int)
				assert.True(t, ok)
				assert.Equal(t, 7, userID)

				email, ok := r.Context().Value(middlewarectx.UserEmail).(string)
				assert.True(t, ok)
				assert.Equal(t, "alice@example.com", email)

				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.JWTMiddleware(validatorMock, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			validatorMock.AssertExpectations(t)
		})
	}
}

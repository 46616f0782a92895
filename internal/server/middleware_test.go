package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sauces", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/api/sauces", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := &mockTokenService{
		verifyFn: func(token string) (uuid.UUID, error) {
			return uuid.Nil, fmt.Errorf("bad signature")
		},
	}
	srv := newTestServer(t, &mockAppService{}, withTokens(tokens))

	req := httptest.NewRequest(http.MethodGet, "/api/sauces", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestRequireAuth_ValidTokenReachesHandler(t *testing.T) {
	userID := uuid.New()
	tokens := &mockTokenService{
		verifyFn: func(token string) (uuid.UUID, error) {
			assert.Equal(t, "good-token", token)
			return userID, nil
		},
	}
	app := &mockAppService{
		listSaucesFn: func(_ context.Context) ([]domain.Sauce, error) {
			return []domain.Sauce{}, nil
		},
	}
	srv := newTestServer(t, app, withTokens(tokens))

	req := httptest.NewRequest(http.MethodGet, "/api/sauces", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
}

func TestAuthRoutes_DoNotRequireToken(t *testing.T) {
	app := &mockAppService{
		signUpFn: func(_ context.Context, email, _ string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email}, nil
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "alice@example.com", "password": "supersecret",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 201, rec.Code)
}

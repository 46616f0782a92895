package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
)

func TestHandleSignUp_Success(t *testing.T) {
	var gotEmail, gotPassword string
	app := &mockAppService{
		signUpFn: func(_ context.Context, email, password string) (*domain.User, error) {
			gotEmail, gotPassword = email, password
			return &domain.User{ID: uuid.New(), Email: email}, nil
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "User created.", decodeMessage(t, rec))
	assert.Equal(t, "alice@example.com", gotEmail)
	assert.Equal(t, "supersecret", gotPassword)
}

func TestHandleSignUp_EmailTaken(t *testing.T) {
	app := &mockAppService{
		signUpFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 409, rec.Code)
}

func TestHandleSignUp_MalformedBody(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandleLogIn_Success(t *testing.T) {
	userID := uuid.New()
	app := &mockAppService{
		logInFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: userID, Email: email}, "signed-token", nil
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["userId"])
	assert.Equal(t, "signed-token", body["token"])
}

func TestHandleLogIn_WrongPassword(t *testing.T) {
	app := &mockAppService{
		logInFn: func(_ context.Context, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestHandleLogIn_UnknownEmail(t *testing.T) {
	app := &mockAppService{
		logInFn: func(_ context.Context, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrUserNotFound
		},
	}
	srv := newTestServer(t, app)

	req := jsonRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, 404, rec.Code)
}

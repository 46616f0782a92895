package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/PointonKaren/OCR-Projet6/internal/config"
	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

// --- Mock implementations ---

type mockAppService struct {
	signUpFn      func(ctx context.Context, email, password string) (*domain.User, error)
	logInFn       func(ctx context.Context, email, password string) (*domain.User, string, error)
	createSauceFn func(ctx context.Context, ownerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error)
	getSauceFn    func(ctx context.Context, id uuid.UUID) (*domain.Sauce, error)
	listSaucesFn  func(ctx context.Context) ([]domain.Sauce, error)
	updateSauceFn func(ctx context.Context, id, callerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error)
	deleteSauceFn func(ctx context.Context, id, callerID uuid.UUID) error
	rateSauceFn   func(ctx context.Context, id, callerID uuid.UUID, like int) (domain.VoteOp, *domain.Sauce, error)
}

func (m *mockAppService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, email, password)
	}
	return &domain.User{ID: uuid.New(), Email: email}, nil
}

func (m *mockAppService) LogIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.logInFn != nil {
		return m.logInFn(ctx, email, password)
	}
	return nil, "", fmt.Errorf("not implemented")
}

func (m *mockAppService) CreateSauce(ctx context.Context, ownerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error) {
	if m.createSauceFn != nil {
		return m.createSauceFn(ctx, ownerID, input, upload)
	}
	return &domain.Sauce{ID: uuid.New(), OwnerID: ownerID}, nil
}

func (m *mockAppService) GetSauce(ctx context.Context, id uuid.UUID) (*domain.Sauce, error) {
	if m.getSauceFn != nil {
		return m.getSauceFn(ctx, id)
	}
	return nil, domain.ErrSauceNotFound
}

func (m *mockAppService) ListSauces(ctx context.Context) ([]domain.Sauce, error) {
	if m.listSaucesFn != nil {
		return m.listSaucesFn(ctx)
	}
	return []domain.Sauce{}, nil
}

func (m *mockAppService) UpdateSauce(ctx context.Context, id, callerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error) {
	if m.updateSauceFn != nil {
		return m.updateSauceFn(ctx, id, callerID, input, upload)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockAppService) DeleteSauce(ctx context.Context, id, callerID uuid.UUID) error {
	if m.deleteSauceFn != nil {
		return m.deleteSauceFn(ctx, id, callerID)
	}
	return nil
}

func (m *mockAppService) RateSauce(ctx context.Context, id, callerID uuid.UUID, like int) (domain.VoteOp, *domain.Sauce, error) {
	if m.rateSauceFn != nil {
		return m.rateSauceFn(ctx, id, callerID, like)
	}
	return 0, nil, fmt.Errorf("not implemented")
}

type mockTokenService struct {
	mintFn   func(userID uuid.UUID) (string, error)
	verifyFn func(token string) (uuid.UUID, error)
}

func (m *mockTokenService) Mint(userID uuid.UUID) (string, error) {
	if m.mintFn != nil {
		return m.mintFn(userID)
	}
	return "token-" + userID.String(), nil
}

func (m *mockTokenService) Verify(token string) (uuid.UUID, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return uuid.Nil, fmt.Errorf("invalid token")
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

// --- Test helpers ---

func newTestServer(t *testing.T, app domain.AppService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:   e,
		config: &config.Config{Port: "8080", UploadDir: t.TempDir(), BaseURL: "http://localhost:8080"},
		app:    app,
		tokens: &mockTokenService{},
		db:     &mockPinger{},
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withTokens(tokens domain.TokenService) func(*Server) {
	return func(s *Server) {
		s.tokens = tokens
	}
}

func withDB(db postgresHealthChecker) func(*Server) {
	return func(s *Server) {
		s.db = db
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// multipartSauceRequest builds a request with a "sauce" JSON part and an
// optional "image" file part.
func multipartSauceRequest(t *testing.T, method, target string, payload saucePayload, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("sauce", string(raw)))

	if withImage {
		part, err := w.CreateFormFile("image", "photo.jpg")
		require.NoError(t, err)
		_, err = io.WriteString(part, "fake image bytes")
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

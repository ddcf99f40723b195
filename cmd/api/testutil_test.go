package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"reelrate/internal/auth"
	"reelrate/internal/ratelimiter"
	"reelrate/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, storage store.Storage) *application {
	t.Helper()

	return &application{
		config: config{
			addr:   ":8080",
			env:    "test",
			apiURL: "http://localhost:8080",
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "admin"},
			},
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 100,
				TimeFrame:            time.Second * 5,
				Enabled:              false,
			},
		},
		store:         storage,
		logger:        zap.NewNop().Sugar(),
		mailer:        &noopMailer{},
		authenticator: auth.NewJWTAuthenticator("test-secret", "reelrate", "reelrate", time.Hour),
		blacklist:     newMemoryBlacklist(),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(100, time.Second*5),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func bearerToken(t *testing.T, app *application, userID int64) string {
	t.Helper()

	token, err := app.authenticator.GenerateToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func testUser(t *testing.T, id int64, name, email, plaintext string) *store.User {
	t.Helper()

	user := &store.User{ID: id, Name: name, Email: email}
	require.NoError(t, user.Password.Set(plaintext))
	return user
}

type noopMailer struct{}

func (m *noopMailer) Send(templateFile, username, email string, data any) error {
	return nil
}

type memoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{revoked: make(map[string]bool)}
}

func (b *memoryBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = true
	return nil
}

func (b *memoryBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[jti], nil
}

// Store stubs. Unset function fields fall back to not-found or empty results.

type stubUsers struct {
	create     func(ctx context.Context, user *store.User) error
	getByEmail func(ctx context.Context, email string) (*store.User, error)
	getByID    func(ctx context.Context, userID int64) (*store.User, error)
}

func (s *stubUsers) Create(ctx context.Context, user *store.User) error {
	if s.create != nil {
		return s.create(ctx, user)
	}
	return nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (s *stubUsers) GetByID(ctx context.Context, userID int64) (*store.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, userID)
	}
	return nil, store.ErrNotFound
}

type stubMovies struct {
	list         func(ctx context.Context, q store.MovieFilterQuery) ([]store.Movie, int64, error)
	create       func(ctx context.Context, movie *store.Movie) error
	getByID      func(ctx context.Context, movieID int64) (*store.Movie, error)
	update       func(ctx context.Context, movieID int64, updates map[string]any) error
	delete       func(ctx context.Context, movieID int64) error
	setPosterURL func(ctx context.Context, movieID int64, url string) error
}

func (s *stubMovies) List(ctx context.Context, q store.MovieFilterQuery) ([]store.Movie, int64, error) {
	if s.list != nil {
		return s.list(ctx, q)
	}
	return nil, 0, nil
}

func (s *stubMovies) Create(ctx context.Context, movie *store.Movie) error {
	if s.create != nil {
		return s.create(ctx, movie)
	}
	return nil
}

func (s *stubMovies) GetByID(ctx context.Context, movieID int64) (*store.Movie, error) {
	if s.getByID != nil {
		return s.getByID(ctx, movieID)
	}
	return nil, store.ErrNotFound
}

func (s *stubMovies) Update(ctx context.Context, movieID int64, updates map[string]any) error {
	if s.update != nil {
		return s.update(ctx, movieID, updates)
	}
	return nil
}

func (s *stubMovies) Delete(ctx context.Context, movieID int64) error {
	if s.delete != nil {
		return s.delete(ctx, movieID)
	}
	return nil
}

func (s *stubMovies) SetPosterURL(ctx context.Context, movieID int64, url string) error {
	if s.setPosterURL != nil {
		return s.setPosterURL(ctx, movieID, url)
	}
	return nil
}

type stubRatings struct {
	list           func(ctx context.Context) ([]store.Rating, error)
	getByID        func(ctx context.Context, ratingID int64) (*store.Rating, error)
	getByIDForUser func(ctx context.Context, ratingID, userID int64) (*store.Rating, error)
	forMovie       func(ctx context.Context, movieID int64) ([]store.Rating, error)
	forMovies      func(ctx context.Context, movieIDs []int64) (map[int64][]store.Rating, error)
	create         func(ctx context.Context, rating *store.Rating) error
	update         func(ctx context.Context, rating *store.Rating) error
	delete         func(ctx context.Context, ratingID, userID int64) error
}

func (s *stubRatings) List(ctx context.Context) ([]store.Rating, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s *stubRatings) GetByID(ctx context.Context, ratingID int64) (*store.Rating, error) {
	if s.getByID != nil {
		return s.getByID(ctx, ratingID)
	}
	return nil, store.ErrNotFound
}

func (s *stubRatings) GetByIDForUser(ctx context.Context, ratingID, userID int64) (*store.Rating, error) {
	if s.getByIDForUser != nil {
		return s.getByIDForUser(ctx, ratingID, userID)
	}
	return nil, store.ErrNotFound
}

func (s *stubRatings) ForMovie(ctx context.Context, movieID int64) ([]store.Rating, error) {
	if s.forMovie != nil {
		return s.forMovie(ctx, movieID)
	}
	return nil, nil
}

func (s *stubRatings) ForMovies(ctx context.Context, movieIDs []int64) (map[int64][]store.Rating, error) {
	if s.forMovies != nil {
		return s.forMovies(ctx, movieIDs)
	}
	return map[int64][]store.Rating{}, nil
}

func (s *stubRatings) Create(ctx context.Context, rating *store.Rating) error {
	if s.create != nil {
		return s.create(ctx, rating)
	}
	return nil
}

func (s *stubRatings) Update(ctx context.Context, rating *store.Rating) error {
	if s.update != nil {
		return s.update(ctx, rating)
	}
	return nil
}

func (s *stubRatings) Delete(ctx context.Context, ratingID, userID int64) error {
	if s.delete != nil {
		return s.delete(ctx, ratingID, userID)
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelrate/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRatingsApp(t *testing.T, movies *stubMovies, ratings *stubRatings) (http.Handler, string) {
	t.Helper()

	user := testUser(t, 7, "Sam Critic", "sam@example.com", "123456")
	users := &stubUsers{
		getByID: func(ctx context.Context, userID int64) (*store.User, error) {
			return user, nil
		},
	}
	if movies == nil {
		movies = &stubMovies{}
	}

	app := newTestApplication(t, store.Storage{Users: users, Movies: movies, Ratings: ratings})
	return app.mount(), bearerToken(t, app, user.ID)
}

func TestListRatings(t *testing.T) {
	t.Run("no ratings is a 404", func(t *testing.T) {
		mux, _ := authedRatingsApp(t, nil, &stubRatings{})

		req := httptest.NewRequest(http.MethodGet, "/v1/ratings", nil)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Not Found Any Rating!, GoTo Create New Rating", decodeEnvelope(t, rr)["error"])
	})

	t.Run("items carry the rater and movie names", func(t *testing.T) {
		ratings := &stubRatings{
			list: func(ctx context.Context) ([]store.Rating, error) {
				return []store.Rating{
					{ID: 1, MovieID: 6, Rating: 5, UserName: "Sam Critic", MovieTitle: "Heat",
						Review: sql.NullString{String: "A classic.", Valid: true}},
					{ID: 2, MovieID: 7, Rating: 3, UserName: "Jane Moviegoer", MovieTitle: "Collateral"},
				}, nil
			},
		}
		mux, _ := authedRatingsApp(t, nil, ratings)

		req := httptest.NewRequest(http.MethodGet, "/v1/ratings", nil)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusOK, rr.Code)

		envelope := decodeEnvelope(t, rr)
		assert.Equal(t, true, envelope["isSuccess"])

		items := envelope["data"].([]any)
		require.Len(t, items, 2)

		first := items[0].(map[string]any)
		assert.EqualValues(t, 1, first["id"])
		assert.Equal(t, "Sam Critic", first["user-name"])
		assert.Equal(t, "Heat", first["movie-name"])
		assert.EqualValues(t, 5, first["rating"])
		assert.Equal(t, "A classic.", first["review"])

		second := items[1].(map[string]any)
		assert.Nil(t, second["review"])
	})
}

func TestCreateRating(t *testing.T) {
	movieExists := &stubMovies{
		getByID: func(ctx context.Context, movieID int64) (*store.Movie, error) {
			return &store.Movie{ID: movieID, Title: "Heat"}, nil
		},
	}

	t.Run("requires authentication", func(t *testing.T) {
		mux, _ := authedRatingsApp(t, movieExists, &stubRatings{})

		req := jsonRequest(t, http.MethodPost, "/v1/ratings", map[string]any{})
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rating outside 1-5 is a 422", func(t *testing.T) {
		mux, token := authedRatingsApp(t, movieExists, &stubRatings{})

		req := jsonRequest(t, http.MethodPost, "/v1/ratings", map[string]any{
			"movie_id": 6,
			"rating":   9,
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		errs := decodeEnvelope(t, rr)["errors"].(map[string]any)
		assert.Equal(t, "The rating must not exceed 5.", errs["rating"])
	})

	t.Run("unknown movie is a 404", func(t *testing.T) {
		mux, token := authedRatingsApp(t, &stubMovies{}, &stubRatings{})

		req := jsonRequest(t, http.MethodPost, "/v1/ratings", map[string]any{
			"movie_id": 99,
			"rating":   4,
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "This Movie isn't Found!", decodeEnvelope(t, rr)["error"])
	})

	t.Run("a user_id in the body is rejected", func(t *testing.T) {
		mux, token := authedRatingsApp(t, movieExists, &stubRatings{})

		req := jsonRequest(t, http.MethodPost, "/v1/ratings", map[string]any{
			"movie_id": 6,
			"rating":   4,
			"user_id":  999,
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("owner comes from the token", func(t *testing.T) {
		var created *store.Rating
		ratings := &stubRatings{
			create: func(ctx context.Context, rating *store.Rating) error {
				rating.ID = 1
				created = rating
				return nil
			},
		}
		mux, token := authedRatingsApp(t, movieExists, ratings)

		req := jsonRequest(t, http.MethodPost, "/v1/ratings", map[string]any{
			"movie_id": 6,
			"rating":   4,
			"review":   "Tense.",
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Rating is created successfully", decodeEnvelope(t, rr)["msg"])

		require.NotNil(t, created)
		assert.EqualValues(t, 7, created.UserID)
		assert.Equal(t, "Tense.", created.Review.String)
	})
}

func TestShowRating(t *testing.T) {
	t.Run("missing rating is a 404", func(t *testing.T) {
		mux, _ := authedRatingsApp(t, nil, &stubRatings{})

		req := httptest.NewRequest(http.MethodGet, "/v1/ratings/99", nil)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "This rating isn't found!", decodeEnvelope(t, rr)["error"])
	})

	t.Run("detail carries the joined names", func(t *testing.T) {
		ratings := &stubRatings{
			getByID: func(ctx context.Context, ratingID int64) (*store.Rating, error) {
				return &store.Rating{ID: ratingID, Rating: 5, UserName: "Sam Critic", MovieTitle: "Heat"}, nil
			},
		}
		mux, _ := authedRatingsApp(t, nil, ratings)

		req := httptest.NewRequest(http.MethodGet, "/v1/ratings/1", nil)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusOK, rr.Code)

		rating := decodeEnvelope(t, rr)["rating"].(map[string]any)
		assert.Equal(t, "Sam Critic", rating["user-name"])
		assert.Equal(t, "Heat", rating["movie-name"])
	})
}

func TestUpdateRating(t *testing.T) {
	movieExists := &stubMovies{
		getByID: func(ctx context.Context, movieID int64) (*store.Movie, error) {
			return &store.Movie{ID: movieID, Title: "Heat"}, nil
		},
	}

	t.Run("someone else's rating is a 404", func(t *testing.T) {
		ratings := &stubRatings{
			getByIDForUser: func(ctx context.Context, ratingID, userID int64) (*store.Rating, error) {
				return nil, store.ErrNotFound
			},
		}
		mux, token := authedRatingsApp(t, movieExists, ratings)

		req := jsonRequest(t, http.MethodPut, "/v1/ratings/1", map[string]any{
			"movie_id": 6,
			"rating":   2,
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Not Found This Rating", decodeEnvelope(t, rr)["error"])
	})

	t.Run("owner rewrites the rating", func(t *testing.T) {
		var updated *store.Rating
		ratings := &stubRatings{
			getByIDForUser: func(ctx context.Context, ratingID, userID int64) (*store.Rating, error) {
				return &store.Rating{ID: ratingID, MovieID: 6, UserID: userID, Rating: 5}, nil
			},
			update: func(ctx context.Context, rating *store.Rating) error {
				updated = rating
				return nil
			},
		}
		mux, token := authedRatingsApp(t, movieExists, ratings)

		req := jsonRequest(t, http.MethodPut, "/v1/ratings/1", map[string]any{
			"movie_id": 6,
			"rating":   2,
			"review":   "Aged poorly.",
		})
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Rating is updated successfully", decodeEnvelope(t, rr)["msg"])

		require.NotNil(t, updated)
		assert.Equal(t, 2, updated.Rating)
		assert.EqualValues(t, 7, updated.UserID)
		assert.Equal(t, "Aged poorly.", updated.Review.String)
	})
}

func TestDeleteRating(t *testing.T) {
	t.Run("someone else's rating is a 404", func(t *testing.T) {
		ratings := &stubRatings{
			delete: func(ctx context.Context, ratingID, userID int64) error {
				return store.ErrNotFound
			},
		}
		mux, token := authedRatingsApp(t, nil, ratings)

		req := httptest.NewRequest(http.MethodDelete, "/v1/ratings/1", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Not Found This Rating", decodeEnvelope(t, rr)["error"])
	})

	t.Run("owner deletes the rating", func(t *testing.T) {
		var gotRatingID, gotUserID int64
		ratings := &stubRatings{
			delete: func(ctx context.Context, ratingID, userID int64) error {
				gotRatingID, gotUserID = ratingID, userID
				return nil
			},
		}
		mux, token := authedRatingsApp(t, nil, ratings)

		req := httptest.NewRequest(http.MethodDelete, "/v1/ratings/1", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Rating is deleted successfully", decodeEnvelope(t, rr)["msg"])
		assert.EqualValues(t, 1, gotRatingID)
		assert.EqualValues(t, 7, gotUserID)
	})
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, *User) error
		GetByEmail(context.Context, string) (*User, error)
		GetByID(context.Context, int64) (*User, error)
	}
	Movies interface {
		List(context.Context, MovieFilterQuery) ([]Movie, int64, error)
		Create(context.Context, *Movie) error
		GetByID(context.Context, int64) (*Movie, error)
		Update(context.Context, int64, map[string]any) error
		Delete(context.Context, int64) error
		SetPosterURL(context.Context, int64, string) error
	}
	Ratings interface {
		List(context.Context) ([]Rating, error)
		GetByID(context.Context, int64) (*Rating, error)
		GetByIDForUser(ctx context.Context, ratingID, userID int64) (*Rating, error)
		ForMovie(context.Context, int64) ([]Rating, error)
		ForMovies(context.Context, []int64) (map[int64][]Rating, error)
		Create(context.Context, *Rating) error
		Update(context.Context, *Rating) error
		Delete(ctx context.Context, ratingID, userID int64) error
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Users:   &UsersStore{db},
		Movies:  &MoviesStore{db},
		Ratings: &RatingsStore{db},
	}
}

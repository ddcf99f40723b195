package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Rating struct {
	ID        int64          `json:"id"`
	MovieID   int64          `json:"movie_id"`
	UserID    int64          `json:"user_id"`
	Rating    int            `json:"rating"` // 1-5
	Review    sql.NullString `json:"review" swaggertype:"string"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Joined fields
	UserName   string `json:"user_name,omitempty"`
	MovieTitle string `json:"movie_title,omitempty"`
}

type RatingsStore struct {
	db *sql.DB
}

func (s *RatingsStore) List(ctx context.Context) ([]Rating, error) {
	query := `
        SELECT r.id, r.movie_id, r.user_id, r.rating, r.review, r.created_at, r.updated_at,
               u.name, m.title
        FROM ratings r
        JOIN users u ON u.id = r.user_id
        JOIN movies m ON m.id = r.movie_id
        ORDER BY r.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRatings(rows)
}

func (s *RatingsStore) GetByID(ctx context.Context, ratingID int64) (*Rating, error) {
	query := `
        SELECT r.id, r.movie_id, r.user_id, r.rating, r.review, r.created_at, r.updated_at,
               u.name, m.title
        FROM ratings r
        JOIN users u ON u.id = r.user_id
        JOIN movies m ON m.id = r.movie_id
        WHERE r.id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rating := &Rating{}
	err := s.db.QueryRowContext(ctx, query, ratingID).Scan(
		&rating.ID,
		&rating.MovieID,
		&rating.UserID,
		&rating.Rating,
		&rating.Review,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&rating.UserName,
		&rating.MovieTitle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

// GetByIDForUser resolves a rating only when it belongs to the given user, so
// an ownership miss is indistinguishable from a missing row.
func (s *RatingsStore) GetByIDForUser(ctx context.Context, ratingID, userID int64) (*Rating, error) {
	query := `
        SELECT id, movie_id, user_id, rating, review, created_at, updated_at
        FROM ratings
        WHERE id = $1 AND user_id = $2
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rating := &Rating{}
	err := s.db.QueryRowContext(ctx, query, ratingID, userID).Scan(
		&rating.ID,
		&rating.MovieID,
		&rating.UserID,
		&rating.Rating,
		&rating.Review,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *RatingsStore) ForMovie(ctx context.Context, movieID int64) ([]Rating, error) {
	query := `
        SELECT r.id, r.movie_id, r.user_id, r.rating, r.review, r.created_at, r.updated_at,
               u.name, m.title
        FROM ratings r
        JOIN users u ON u.id = r.user_id
        JOIN movies m ON m.id = r.movie_id
        WHERE r.movie_id = $1
        ORDER BY r.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRatings(rows)
}

// ForMovies loads the ratings for a page of movies in one round trip.
func (s *RatingsStore) ForMovies(ctx context.Context, movieIDs []int64) (map[int64][]Rating, error) {
	query := `
        SELECT r.id, r.movie_id, r.user_id, r.rating, r.review, r.created_at, r.updated_at,
               u.name, m.title
        FROM ratings r
        JOIN users u ON u.id = r.user_id
        JOIN movies m ON m.id = r.movie_id
        WHERE r.movie_id = ANY($1)
        ORDER BY r.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, movieIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings, err := scanRatings(rows)
	if err != nil {
		return nil, err
	}

	byMovie := make(map[int64][]Rating, len(movieIDs))
	for _, rating := range ratings {
		byMovie[rating.MovieID] = append(byMovie[rating.MovieID], rating)
	}
	return byMovie, nil
}

func (s *RatingsStore) Create(ctx context.Context, rating *Rating) error {
	query := `
        INSERT INTO ratings (movie_id, user_id, rating, review)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRowContext(ctx, query,
		rating.MovieID,
		rating.UserID,
		rating.Rating,
		rating.Review,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
}

func (s *RatingsStore) Update(ctx context.Context, rating *Rating) error {
	query := `
        UPDATE ratings
        SET movie_id = $1, rating = $2, review = $3, updated_at = now()
        WHERE id = $4 AND user_id = $5
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query,
		rating.MovieID,
		rating.Rating,
		rating.Review,
		rating.ID,
		rating.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RatingsStore) Delete(ctx context.Context, ratingID, userID int64) error {
	query := `DELETE FROM ratings WHERE id = $1 AND user_id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, ratingID, userID)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRatings(rows *sql.Rows) ([]Rating, error) {
	var ratings []Rating
	for rows.Next() {
		var rating Rating
		err := rows.Scan(
			&rating.ID,
			&rating.MovieID,
			&rating.UserID,
			&rating.Rating,
			&rating.Review,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.UserName,
			&rating.MovieTitle,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

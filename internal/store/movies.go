package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
)

type Movie struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Director    string         `json:"director"`
	Genre       string         `json:"genre"`
	ReleaseYear int            `json:"release_year"`
	Description string         `json:"description"`
	PosterURL   sql.NullString `json:"poster_url" swaggertype:"string"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FilterError reports a query parameter that could not be parsed.
type FilterError struct {
	Field   string
	Message string
}

func (e *FilterError) Error() string {
	return e.Message
}

type MovieFilterQuery struct {
	Page      int    `json:"page" validate:"gte=1"`
	PerPage   int    `json:"per_page" validate:"gte=1"`
	SortOrder string `json:"sort_order" validate:"oneof=asc desc"`
	Director  string `json:"director"`
	Genre     string `json:"genre"`
}

// Parse extracts query parameters from the request URL and populates the MovieFilterQuery.
func (q MovieFilterQuery) Parse(r *http.Request) (MovieFilterQuery, error) {
	params := r.URL.Query()

	if pageStr := params.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return q, &FilterError{Field: "page", Message: "The page must be a valid integer."}
		}
		q.Page = page
	}

	if perPageStr := params.Get("per_page"); perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil {
			return q, &FilterError{Field: "per_page", Message: "The items per page must be a valid integer."}
		}
		q.PerPage = perPage
	}

	if sortOrder := params.Get("sort_order"); sortOrder != "" {
		q.SortOrder = sortOrder
	}

	if director := params.Get("director"); director != "" {
		q.Director = director
	}

	if genre := params.Get("genre"); genre != "" {
		q.Genre = genre
	}

	return q, nil
}

type MoviesStore struct {
	db *sql.DB
}

// List returns one page of movies ordered by release year plus the total row
// count for the active filters. SortOrder must be validated before this runs
// since it is spliced into the query.
func (s *MoviesStore) List(ctx context.Context, q MovieFilterQuery) ([]Movie, int64, error) {
	query := fmt.Sprintf(`
        SELECT count(*) OVER(), id, title, director, genre, release_year, description, poster_url, created_at, updated_at
        FROM movies
        WHERE ($1 = '' OR director = $1)
          AND ($2 = '' OR genre = $2)
        ORDER BY release_year %s, id %s
        LIMIT $3 OFFSET $4
    `, q.SortOrder, q.SortOrder)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	offset := (q.Page - 1) * q.PerPage
	rows, err := s.db.QueryContext(ctx, query, q.Director, q.Genre, q.PerPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		movies []Movie
		total  int64
	)
	for rows.Next() {
		var movie Movie
		err := rows.Scan(
			&total,
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Genre,
			&movie.ReleaseYear,
			&movie.Description,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		movies = append(movies, movie)
	}
	return movies, total, rows.Err()
}

func (s *MoviesStore) Create(ctx context.Context, movie *Movie) error {
	query := `
        INSERT INTO movies (title, director, genre, release_year, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Director,
		movie.Genre,
		movie.ReleaseYear,
		movie.Description,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
}

func (s *MoviesStore) GetByID(ctx context.Context, movieID int64) (*Movie, error) {
	query := `
        SELECT id, title, director, genre, release_year, description, poster_url, created_at, updated_at
        FROM movies
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	movie := &Movie{}
	err := s.db.QueryRowContext(ctx, query, movieID).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Genre,
		&movie.ReleaseYear,
		&movie.Description,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

// Update writes only the supplied columns. Keys are ordered so the generated
// statement is stable.
func (s *MoviesStore) Update(ctx context.Context, movieID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates))
	for column := range updates {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	query := "UPDATE movies SET "
	args := make([]any, 0, len(updates)+1)
	for i, column := range columns {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", column, i+1)
		args = append(args, updates[column])
	}
	query += fmt.Sprintf(", updated_at = now() WHERE id = $%d", len(columns)+1)
	args = append(args, movieID)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MoviesStore) Delete(ctx context.Context, movieID int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, movieID)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MoviesStore) SetPosterURL(ctx context.Context, movieID int64, url string) error {
	query := `UPDATE movies SET poster_url = $1, updated_at = now() WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, url, movieID)
	return err
}

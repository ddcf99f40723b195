package main

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"reelrate/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

// for cloudinary uploadParams
func boolPtr(b bool) *bool {
	return &b
}

type movieRatingResponse struct {
	UserName string  `json:"user-name"`
	Rating   int     `json:"rating"`
	Review   *string `json:"review"`
}

type movieResponse struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	Director      string                `json:"director"`
	Genre         string                `json:"genre"`
	ReleaseYear   int                   `json:"release_year"`
	Description   string                `json:"description"`
	PosterURL     *string               `json:"poster_url,omitempty"`
	Ratings       []movieRatingResponse `json:"ratings"`
	AverageRating float64               `json:"average_rating"`
}

type moviePageResponse struct {
	CurrentPage   int             `json:"current-page"`
	Movies        []movieResponse `json:"movies"`
	NextPage      *string         `json:"next-page"`
	PreviousPage  *string         `json:"previous-page"`
	TotalMovies   int64           `json:"total-movies"`
	MoviesPerPage int             `json:"movies-per-page"`
}

// listMoviesHandler godoc
//
//	@Summary		List movies
//	@Description	Paginated movies sorted by release year, optionally filtered by director and genre
//	@Tags			movies
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			per_page	query		int		false	"Page size (default 5)"
//	@Param			sort_order	query		string	false	"asc or desc (default desc)"
//	@Param			director	query		string	false	"Exact director filter"
//	@Param			genre		query		string	false	"Exact genre filter"
//	@Success		200			{object}	map[string]any	"Page of movies"
//	@Failure		404			{object}	map[string]any	"No movies found"
//	@Failure		422			{object}	map[string]any	"Validation errors"
//	@Router			/v1/movies [get]
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	fq := store.MovieFilterQuery{
		Page:      1,
		PerPage:   5,
		SortOrder: "desc",
	}

	fq, err := fq.Parse(r)
	if err != nil {
		var filterErr *store.FilterError
		if errors.As(err, &filterErr) {
			app.failedValidationResponse(w, r, map[string]string{filterErr.Field: filterErr.Message})
			return
		}
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(fq); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	ctx := r.Context()

	movies, total, err := app.store.Movies.List(ctx, fq)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if len(movies) == 0 {
		app.notFoundResponse(w, r, "Not Found Any Movie!, GoTo Create New Movie")
		return
	}

	movieIDs := make([]int64, 0, len(movies))
	for _, movie := range movies {
		movieIDs = append(movieIDs, movie.ID)
	}

	ratingsByMovie, err := app.store.Ratings.ForMovies(ctx, movieIDs)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie, ratingsByMovie[movie.ID]))
	}

	page := moviePageResponse{
		CurrentPage:   fq.Page,
		Movies:        items,
		NextPage:      app.moviePageURL(r, fq, fq.Page+1, int64(fq.Page*fq.PerPage) < total),
		PreviousPage:  app.moviePageURL(r, fq, fq.Page-1, fq.Page > 1),
		TotalMovies:   total,
		MoviesPerPage: fq.PerPage,
	}

	if err := app.jsonResponse(w, http.StatusOK, "movies", page); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateMoviePayload struct {
	Title       string `json:"title" validate:"required,max=255"`
	Director    string `json:"director" validate:"required,max=255"`
	Genre       string `json:"genre" validate:"required,max=255"`
	ReleaseYear int    `json:"release_year" validate:"required,releaseyear"`
	Description string `json:"description" validate:"required"`
}

// createMovieHandler godoc
//
//	@Summary		Create a movie
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateMoviePayload	true	"Movie fields"
//	@Success		201		{object}	map[string]any		"Movie is created successfully"
//	@Failure		422		{object}	map[string]any		"Validation errors"
//	@Security		ApiKeyAuth
//	@Router			/v1/movies [post]
func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateMoviePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	movie := &store.Movie{
		Title:       payload.Title,
		Director:    payload.Director,
		Genre:       payload.Genre,
		ReleaseYear: payload.ReleaseYear,
		Description: payload.Description,
	}

	if err := app.store.Movies.Create(r.Context(), movie); err != nil {
		app.logger.Errorw("creating movie", "error", err)
		app.badRequestResponse(w, r, errors.New("Create movie failed!"))
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, "msg", "Movie is created successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// showMovieHandler godoc
//
//	@Summary		Get a movie
//	@Description	Movie detail with its ratings and the rounded average rating
//	@Tags			movies
//	@Produce		json
//	@Param			movieID	path		int				true	"Movie ID"
//	@Success		200		{object}	map[string]any	"Movie detail"
//	@Failure		404		{object}	map[string]any	"Movie not found"
//	@Router			/v1/movies/{movieID} [get]
func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid movie ID"))
		return
	}

	ctx := r.Context()

	movie, err := app.store.Movies.GetByID(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Movie not found!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	ratings, err := app.store.Ratings.ForMovie(ctx, movie.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "movie", toMovieResponse(*movie, ratings)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateMoviePayload struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Director    *string `json:"director" validate:"omitempty,max=255"`
	Genre       *string `json:"genre" validate:"omitempty,max=255"`
	ReleaseYear *int    `json:"release_year" validate:"omitempty,releaseyear"`
	Description *string `json:"description"`
}

// updateMovieHandler godoc
//
//	@Summary		Update a movie
//	@Description	Partial update; only supplied, non-blank fields overwrite the stored ones
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			movieID	path		int					true	"Movie ID"
//	@Param			payload	body		UpdateMoviePayload	true	"Fields to update"
//	@Success		200		{object}	map[string]any		"Movie details updated successfully"
//	@Failure		404		{object}	map[string]any		"Movie not found"
//	@Failure		422		{object}	map[string]any		"Validation errors"
//	@Security		ApiKeyAuth
//	@Router			/v1/movies/{movieID} [put]
func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid movie ID"))
		return
	}

	ctx := r.Context()

	movie, err := app.store.Movies.GetByID(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Movie!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	var payload UpdateMoviePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	// Blank strings are treated as not supplied, like absent keys.
	updates := make(map[string]any)
	setIfPresent := func(column string, value *string) {
		if value != nil && strings.TrimSpace(*value) != "" {
			updates[column] = strings.TrimSpace(*value)
		}
	}
	setIfPresent("title", payload.Title)
	setIfPresent("director", payload.Director)
	setIfPresent("genre", payload.Genre)
	setIfPresent("description", payload.Description)
	if payload.ReleaseYear != nil {
		updates["release_year"] = *payload.ReleaseYear
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("There is no data to update"))
		return
	}

	if err := app.store.Movies.Update(ctx, movie.ID, updates); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "msg", "Movie details updated successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMovieHandler godoc
//
//	@Summary		Delete a movie
//	@Description	Hard delete; the movie's ratings are cascade-deleted
//	@Tags			movies
//	@Produce		json
//	@Param			movieID	path		int				true	"Movie ID"
//	@Success		200		{object}	map[string]any	"Movie is deleted successfully"
//	@Failure		404		{object}	map[string]any	"Movie not found"
//	@Security		ApiKeyAuth
//	@Router			/v1/movies/{movieID} [delete]
func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid movie ID"))
		return
	}

	ctx := r.Context()

	movie, err := app.store.Movies.GetByID(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Movie!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.store.Movies.Delete(ctx, movie.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "msg", "Movie is deleted successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadMoviePosterHandler godoc
//
//	@Summary		Upload movie poster
//	@Description	Uploads a poster image and saves its URL on the movie
//	@Tags			movies
//	@Accept			mpfd
//	@Produce		json
//	@Param			movieID	path		int		true	"Movie ID"
//	@Param			poster	formData	file	true	"Poster file, max 2MB, JPEG or PNG"
//	@Success		200		{object}	map[string]any	"Poster URL"
//	@Failure		404		{object}	map[string]any	"Movie not found"
//	@Security		ApiKeyAuth
//	@Router			/v1/movies/{movieID}/poster [post]
func (app *application) uploadMoviePosterHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid movie ID"))
		return
	}

	ctx := r.Context()

	movie, err := app.store.Movies.GetByID(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Movie!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := r.ParseMultipartForm(2 << 20); err != nil {
		app.badRequestResponse(w, r, errors.New("Unable to parse form, file size limit is 2MB"))
		return
	}

	file, fileHeader, err := r.FormFile("poster")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Unable to retrieve file"))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		app.badRequestResponse(w, r, errors.New("Only JPEG and PNG images are allowed"))
		return
	}

	uploadParams := uploader.UploadParams{
		PublicID:       fmt.Sprintf("%d", movie.ID),
		Overwrite:      boolPtr(true),
		Folder:         "movie_posters",
		Transformation: "w_600,h_900,c_fill,q_auto",
	}
	uploadResult, err := app.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Movies.SetPosterURL(ctx, movie.ID, uploadResult.SecureURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "poster_url", uploadResult.SecureURL); err != nil {
		app.internalServerError(w, r, err)
	}
}

func toMovieResponse(movie store.Movie, ratings []store.Rating) movieResponse {
	items := make([]movieRatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, movieRatingResponse{
			UserName: rating.UserName,
			Rating:   rating.Rating,
			Review:   nullableString(rating.Review),
		})
	}

	return movieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Director:      movie.Director,
		Genre:         movie.Genre,
		ReleaseYear:   movie.ReleaseYear,
		Description:   movie.Description,
		PosterURL:     nullableString(movie.PosterURL),
		Ratings:       items,
		AverageRating: averageRating(ratings),
	}
}

// averageRating reports the mean rating rounded to one decimal, 0 when the
// movie has no ratings yet.
func averageRating(ratings []store.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum int
	for _, rating := range ratings {
		sum += rating.Rating
	}

	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// moviePageURL builds an absolute link to a page of the current listing, nil
// when the page does not exist.
func (app *application) moviePageURL(r *http.Request, fq store.MovieFilterQuery, page int, exists bool) *string {
	if !exists {
		return nil
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(fq.PerPage))
	values.Set("sort_order", fq.SortOrder)
	if fq.Director != "" {
		values.Set("director", fq.Director)
	}
	if fq.Genre != "" {
		values.Set("genre", fq.Genre)
	}

	link := fmt.Sprintf("%s%s?%s", app.config.apiURL, r.URL.Path, values.Encode())
	return &link
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"reelrate/internal/store"

	"github.com/go-chi/chi/v5"
)

type ratingResponse struct {
	ID        int64   `json:"id"`
	UserName  string  `json:"user-name"`
	MovieName string  `json:"movie-name"`
	Rating    int     `json:"rating"`
	Review    *string `json:"review"`
}

// listRatingsHandler godoc
//
//	@Summary		List ratings
//	@Description	All ratings with the rater's name and the rated movie's title
//	@Tags			ratings
//	@Produce		json
//	@Success		200	{object}	map[string]any	"Ratings"
//	@Failure		404	{object}	map[string]any	"No ratings found"
//	@Router			/v1/ratings [get]
func (app *application) listRatingsHandler(w http.ResponseWriter, r *http.Request) {
	ratings, err := app.store.Ratings.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if len(ratings) == 0 {
		app.notFoundResponse(w, r, "Not Found Any Rating!, GoTo Create New Rating")
		return
	}

	items := make([]ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, toRatingResponse(rating))
	}

	if err := app.jsonResponse(w, http.StatusOK, "data", items); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateRatingPayload struct {
	MovieID int64   `json:"movie_id" validate:"required"`
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Review  *string `json:"review"`
}

// createRatingHandler godoc
//
//	@Summary		Create a rating
//	@Description	Rates a movie 1-5 with an optional review, owned by the authenticated user
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateRatingPayload	true	"Rating fields"
//	@Success		201		{object}	map[string]any		"Rating is created successfully"
//	@Failure		404		{object}	map[string]any		"Movie not found"
//	@Failure		422		{object}	map[string]any		"Validation errors"
//	@Security		ApiKeyAuth
//	@Router			/v1/ratings [post]
func (app *application) createRatingHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	ctx := r.Context()

	if _, err := app.store.Movies.GetByID(ctx, payload.MovieID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "This Movie isn't Found!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	// Owner always comes from the token, never from the payload.
	user := getUserFromContext(r)

	rating := &store.Rating{
		MovieID: payload.MovieID,
		UserID:  user.ID,
		Rating:  payload.Rating,
		Review:  toNullString(payload.Review),
	}

	if err := app.store.Ratings.Create(ctx, rating); err != nil {
		app.logger.Errorw("creating rating", "error", err)
		app.badRequestResponse(w, r, errors.New("Rating create is failed"))
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, "msg", "Rating is created successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// showRatingHandler godoc
//
//	@Summary		Get a rating
//	@Tags			ratings
//	@Produce		json
//	@Param			ratingID	path		int				true	"Rating ID"
//	@Success		200			{object}	map[string]any	"Rating detail"
//	@Failure		404			{object}	map[string]any	"Rating not found"
//	@Router			/v1/ratings/{ratingID} [get]
func (app *application) showRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := strconv.ParseInt(chi.URLParam(r, "ratingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid rating ID"))
		return
	}

	rating, err := app.store.Ratings.GetByID(r.Context(), ratingID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "This rating isn't found!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "rating", toRatingResponse(*rating)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateRatingPayload struct {
	MovieID int64   `json:"movie_id" validate:"required"`
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Review  *string `json:"review"`
}

// updateRatingHandler godoc
//
//	@Summary		Update a rating
//	@Description	Rewrites the rating; only its owner can, others get a 404
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			ratingID	path		int					true	"Rating ID"
//	@Param			payload		body		UpdateRatingPayload	true	"Rating fields"
//	@Success		200			{object}	map[string]any		"Rating is updated successfully"
//	@Failure		404			{object}	map[string]any		"Rating not found"
//	@Failure		422			{object}	map[string]any		"Validation errors"
//	@Security		ApiKeyAuth
//	@Router			/v1/ratings/{ratingID} [put]
func (app *application) updateRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := strconv.ParseInt(chi.URLParam(r, "ratingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid rating ID"))
		return
	}

	ctx := r.Context()
	user := getUserFromContext(r)

	rating, err := app.store.Ratings.GetByIDForUser(ctx, ratingID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Rating")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	var payload UpdateRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	if _, err := app.store.Movies.GetByID(ctx, payload.MovieID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "This Movie isn't Found!")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	rating.MovieID = payload.MovieID
	rating.Rating = payload.Rating
	rating.Review = toNullString(payload.Review)

	if err := app.store.Ratings.Update(ctx, rating); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Rating")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "msg", "Rating is updated successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteRatingHandler godoc
//
//	@Summary		Delete a rating
//	@Description	Hard delete; only the owner can, others get a 404
//	@Tags			ratings
//	@Produce		json
//	@Param			ratingID	path		int				true	"Rating ID"
//	@Success		200			{object}	map[string]any	"Rating is deleted successfully"
//	@Failure		404			{object}	map[string]any	"Rating not found"
//	@Security		ApiKeyAuth
//	@Router			/v1/ratings/{ratingID} [delete]
func (app *application) deleteRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := strconv.ParseInt(chi.URLParam(r, "ratingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("Invalid rating ID"))
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Ratings.Delete(r.Context(), ratingID, user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, "Not Found This Rating")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "msg", "Rating is deleted successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

func toRatingResponse(rating store.Rating) ratingResponse {
	return ratingResponse{
		ID:        rating.ID,
		UserName:  rating.UserName,
		MovieName: rating.MovieTitle,
		Rating:    rating.Rating,
		Review:    nullableString(rating.Review),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

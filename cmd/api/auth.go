package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reelrate/internal/mailer"
	"reelrate/internal/store"
)

type RegisterUserPayload struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,numeric,min=6,max=10"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// registerUserHandler godoc
//
//	@Summary		Registers a user
//	@Description	Creates an account from name, email and a numeric password with confirmation
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterUserPayload	true	"User credentials"
//	@Success		201		{object}	map[string]any		"Registration is successfully"
//	@Failure		422		{object}	map[string]any		"Validation errors"
//	@Router			/register [post]
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	user := &store.User{
		Name:  payload.Name,
		Email: payload.Email,
	}
	// hash the user password.
	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.Create(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			app.failedValidationResponse(w, r, map[string]string{
				"email": "The email address has already been taken.",
			})
		default:
			app.logger.Errorw("creating user", "error", err)
			app.badRequestResponse(w, r, errors.New("Registration is failed!"))
		}
		return
	}

	// Welcome mail must not hold up or fail the registration.
	go func() {
		vars := struct {
			Username string
		}{
			Username: user.Name,
		}
		if err := app.mailer.Send(mailer.UserWelcomeTemplate, user.Name, user.Email, vars); err != nil {
			app.logger.Errorw("sending welcome email", "email", user.Email, "error", err)
		}
	}()

	if err := app.jsonResponse(w, http.StatusCreated, "msg", "Registration is successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

type LoginUserPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,numeric,min=6,max=10"`
}

// loginUserHandler godoc
//
//	@Summary		Login to get a bearer token
//	@Description	Checks credentials and issues the token protected routes expect
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginUserPayload	true	"User credentials"
//	@Success		202		{object}	map[string]any		"Bearer token"
//	@Failure		401		{object}	map[string]any		"Incorrect credentials"
//	@Failure		422		{object}	map[string]any		"Validation errors"
//	@Router			/login [post]
func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	if err := Validate.Struct(payload); err != nil {
		app.failedValidationResponse(w, r, validationErrors(err))
		return
	}

	user, err := app.store.Users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("username or password is incorrect"))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := user.Password.Compare(payload.Password); err != nil {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("username or password is incorrect"))
		return
	}

	token, err := app.authenticator.GenerateToken(user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusAccepted, "token", token); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Logout user
//	@Description	Revokes the presented bearer token so it stops authenticating
//	@Tags			authentication
//	@Produce		json
//	@Success		200	{object}	map[string]any	"User logged out successfully"
//	@Security		ApiKeyAuth
//	@Router			/logout [get]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromContext(r)

	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The denylist entry lives exactly as long as the token would have.
	if err := app.blacklist.Revoke(r.Context(), jti, time.Until(exp.Time)); err != nil {
		app.logger.Errorw("revoking token", "error", err)
		writeEnvelope(w, http.StatusInternalServerError, "error", "Failed to logout, please try again")
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, "msg", "User logged out successfully"); err != nil {
		app.internalServerError(w, r, err)
	}
}

package main

import (
	"net/http"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeEnvelope(w, http.StatusInternalServerError, "error", "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	writeEnvelope(w, http.StatusBadRequest, "error", err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path)

	writeEnvelope(w, http.StatusNotFound, "error", message)
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	writeEnvelope(w, http.StatusUnprocessableEntity, "errors", errs)
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err)

	writeEnvelope(w, http.StatusUnauthorized, "error", err.Error())
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err)

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeEnvelope(w, http.StatusUnauthorized, "error", err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeEnvelope(w, http.StatusTooManyRequests, "error", "rate limit exceeded, retry after: "+retryAfter)
}

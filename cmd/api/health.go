package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports the environment and running version
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]any	"status"
//	@Security		BasicAuth
//	@Router			/v1/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	if err := app.jsonResponse(w, http.StatusOK, "data", data); err != nil {
		app.internalServerError(w, r, err)
	}
}

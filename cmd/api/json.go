package main

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so the errors map lines up with
	// the request body.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validation for movie release years: four digits,
	// 1800 up to the current calendar year.
	Validate.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1800 && year <= int64(time.Now().Year())
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

// writeEnvelope shapes every response as {isSuccess, <key>: <value>} where
// isSuccess mirrors the status code.
func writeEnvelope(w http.ResponseWriter, status int, key string, value any) error {
	return writeJSON(w, status, map[string]any{
		"isSuccess": status >= http.StatusOK && status < http.StatusMultipleChoices,
		key:         value,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, key string, value any) error {
	return writeEnvelope(w, status, key, value)
}

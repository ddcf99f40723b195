package main

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Display names used in validation messages, keyed by JSON field name.
var fieldAttributes = map[string]string{
	"name":                  "full name",
	"email":                 "email address",
	"password":              "password",
	"password_confirmation": "password",
	"title":                 "movie title",
	"director":              "director name",
	"genre":                 "genre",
	"release_year":          "release year",
	"description":           "movie description",
	"page":                  "page",
	"per_page":              "items per page",
	"sort_order":            "sorting order",
	"movie_id":              "movie",
	"rating":                "rating",
	"review":                "review",
}

// validationErrors turns a validator error into the field->message map the
// 422 envelope carries.
func validationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"payload": "The request payload is invalid."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	attr, ok := fieldAttributes[fe.Field()]
	if !ok {
		attr = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", attr)
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", attr)
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", attr)
	case "oneof":
		return fmt.Sprintf("The %s must be either \"asc\" or \"desc\".", attr)
	case "releaseyear":
		return fmt.Sprintf("The %s must be a 4 digit year between 1800 and the current year.", attr)
	case "min":
		if isStringKind(fe.Kind()) {
			return fmt.Sprintf("The %s must be a minimum %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", attr, fe.Param())
	case "max":
		if isStringKind(fe.Kind()) {
			return fmt.Sprintf("The %s may not be greater than %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must not exceed %s.", attr, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", attr, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s must not exceed %s.", attr, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", attr)
	}
}

func isStringKind(k reflect.Kind) bool {
	return k == reflect.String
}

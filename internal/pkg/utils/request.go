package utils

import (
	"consultant-discovery/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst and validates it when it carries tags.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

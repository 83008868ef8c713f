package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/quillboard/quill/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO before it goes over the wire.
func Validate(body any) error {
	if err := validate.Struct(body); err != nil {
		return &internal_errors.StatusError{Message: "required fields missing or invalid: " + err.Error(), StatusCode: http.StatusBadRequest}
	}
	return nil
}

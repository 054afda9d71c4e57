package http

import (
	"regexp"

	"ams-backend/pkg/barcode"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reAssetID = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// DOC number: keyed-in 5/6 digits or a scannable 12-digit GTIN
	_ = v.RegisterValidation("docnum", func(fl validator.FieldLevel) bool {
		_, err := barcode.NormalizeDOC(fl.Field().String())
		return err == nil
	})
	// asset ids are short label codes
	_ = v.RegisterValidation("assetid", func(fl validator.FieldLevel) bool {
		return reAssetID.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "docnum":
			out = append(out, FieldError{Field: field, Message: "must be a 5/6-digit DOC number or a valid 12-digit barcode"})
		case "assetid":
			out = append(out, FieldError{Field: field, Message: "must be an asset label code"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

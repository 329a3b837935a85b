package service

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom rules used by request types
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notblankedges", notBlankEdges)
	return v
}

// notBlankEdges rejects strings that begin or end with whitespace, which also covers
// strings made only of whitespace
func notBlankEdges(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return !unicode.IsSpace(rune(s[0])) && strings.TrimRightFunc(s, unicode.IsSpace) == s
}

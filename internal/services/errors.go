package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors let handlers pick a status code without inspecting
// database error strings.
var (
	ErrDatabaseNotConfigured = errors.New("database client is not configured")
	ErrBuyerNotFound         = errors.New("buyer not found")
)

// TemplateValidationError reports the required placeholder tokens a template
// is missing, grouped by category.
type TemplateValidationError struct {
	MissingBuyer   []string
	MissingListing []string
}

func (e *TemplateValidationError) Error() string {
	var categories []string
	if len(e.MissingBuyer) > 0 {
		categories = append(categories, fmt.Sprintf("buyer placeholders (%s)", strings.Join(e.MissingBuyer, ", ")))
	}
	if len(e.MissingListing) > 0 {
		categories = append(categories, fmt.Sprintf("listing placeholders (%s)", strings.Join(e.MissingListing, ", ")))
	}
	return "template is missing required " + strings.Join(categories, " and ")
}

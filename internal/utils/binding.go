package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds the request body to obj. On failure it writes a 400 response
// with a readable message and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(bindErrorMessage(err)))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var parts []string
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("field '%s' is required", strings.ToLower(e.Field())))
			case "max":
				parts = append(parts, fmt.Sprintf("field '%s' must be at most %s characters long", strings.ToLower(e.Field()), e.Param()))
			default:
				parts = append(parts, fmt.Sprintf("field '%s' failed validation '%s'", strings.ToLower(e.Field()), e.Tag()))
			}
		}
		return strings.Join(parts, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' must be of type %s", jsonErr.Field, jsonErr.Type)
	}

	return "malformed JSON or invalid request body"
}

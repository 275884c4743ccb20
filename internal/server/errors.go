package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	catalogdomain "github.com/railzwaylabs/envelope/internal/catalog/domain"
	"github.com/railzwaylabs/envelope/pkg/response"
)

const (
	codeInvalidID = "INVALID_ID"
	codeConflict  = "CONFLICT"

	validationFailedMessage = "Validation failed"
)

// AbortWithError writes the failure envelope matching err and stops the
// handler chain. Unclassified errors are attached to the context for the
// access log and never leak into the body.
func AbortWithError(c *gin.Context, err error) {
	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respond(c, status, resp)
	c.Abort()
}

func errorResponse(err error) (int, *response.Response[any]) {
	var (
		validationErrs validator.ValidationErrors
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		numErr         *strconv.NumError
	)

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, response.ValidationError[any](validationFailedMessage, validationFields(validationErrs))
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.As(err, &numErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, invalidRequestError()
	case errors.Is(err, catalogdomain.ErrNotFound):
		return http.StatusNotFound, response.NotFound[any]("Item not found")
	case errors.Is(err, catalogdomain.ErrInvalidID):
		return http.StatusBadRequest, response.FailWithCode[any]("Invalid item id", codeInvalidID)
	case errors.Is(err, catalogdomain.ErrInvalidName):
		return http.StatusBadRequest, newValidationError("name", "must contain at least one letter or digit")
	case errors.Is(err, catalogdomain.ErrInvalidPrice):
		return http.StatusBadRequest, newValidationError("price", "must be a non-negative decimal")
	case errors.Is(err, catalogdomain.ErrDuplicateSlug):
		return http.StatusConflict, response.FailWithCode[any]("An item with this name already exists", codeConflict)
	default:
		return http.StatusInternalServerError, response.ServerError[any]("")
	}
}

func invalidRequestError() *response.Response[any] {
	return response.FailWithCode[any]("Invalid request", response.CodeInvalidRequest)
}

func newValidationError(field, message string) *response.Response[any] {
	return response.ValidationError[any](validationFailedMessage, map[string][]string{
		field: {message},
	})
}

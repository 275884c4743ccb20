// Package response defines the envelope every API reply is wrapped in.
package response

import (
	"encoding/json"
	"reflect"
)

const (
	CodeCreated          = "CREATED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

const (
	defaultOkMessage           = "Operation successful"
	defaultPaginatedMessage    = "Data retrieved successfully"
	defaultNotFoundMessage     = "Resource not found"
	defaultUnauthorizedMessage = "Unauthorized"
	defaultServerErrorMessage  = "Internal server error"
)

// Response is the standard API envelope. Optional fields left at their zero
// value are omitted from the JSON output.
type Response[T any] struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Code       string          `json:"code,omitempty"`
	Data       *T              `json:"data,omitempty"`
	Errors     any             `json:"errors,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// Encode renders the envelope as JSON. Errors from marshaling the payload are
// returned as-is.
func (r *Response[T]) Encode() ([]byte, error) {
	return json.Marshal(r)
}

func Ok[T any](message string) *Response[T] {
	return &Response[T]{
		Success: true,
		Message: orDefault(message, defaultOkMessage),
	}
}

// OkWithData wraps a payload. An empty code is left out of the output, and so
// is a nil slice, map or pointer payload.
func OkWithData[T any](data T, message, code string) *Response[T] {
	return &Response[T]{
		Success: true,
		Message: orDefault(message, defaultOkMessage),
		Code:    code,
		Data:    payload(data),
	}
}

// OkPaginated wraps one page of a larger collection and derives the
// pagination block from the totals. A nil page is left out of the output; an
// empty non-nil slice is kept as [].
func OkPaginated[T any](data T, totalItems, currentPage, pageSize int, message string) *Response[T] {
	pagination := NewPaginationInfo(totalItems, currentPage, pageSize)
	return &Response[T]{
		Success:    true,
		Message:    orDefault(message, defaultPaginatedMessage),
		Data:       payload(data),
		Pagination: &pagination,
	}
}

func Fail[T any](message string) *Response[T] {
	return &Response[T]{
		Success: false,
		Message: message,
	}
}

func FailWithCode[T any](message, code string) *Response[T] {
	return &Response[T]{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// FailWithErrors attaches arbitrary structured error detail. A nil detail
// (including a typed nil) leaves errors out of the output.
func FailWithErrors[T any](message string, detail any) *Response[T] {
	resp := &Response[T]{
		Success: false,
		Message: message,
	}
	if !isNil(detail) {
		resp.Errors = detail
	}
	return resp
}

// ValidationError attaches a field to messages map. Message order per field
// is kept as given.
func ValidationError[T any](message string, fields map[string][]string) *Response[T] {
	resp := &Response[T]{
		Success: false,
		Message: message,
	}
	if len(fields) > 0 {
		resp.Errors = fields
	}
	return resp
}

func NotFound[T any](message string) *Response[T] {
	return FailWithCode[T](orDefault(message, defaultNotFoundMessage), CodeNotFound)
}

func Unauthorized[T any](message string) *Response[T] {
	return FailWithCode[T](orDefault(message, defaultUnauthorizedMessage), CodeUnauthorized)
}

func ServerError[T any](message string) *Response[T] {
	return FailWithCode[T](orDefault(message, defaultServerErrorMessage), CodeInternalError)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

func payload[T any](data T) *T {
	if isNil(data) {
		return nil
	}
	return &data
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

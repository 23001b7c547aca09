// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error messages returned to clients of the extract endpoint.
const (
	MsgMissingFile   = "No file part"
	MsgEmptyFilename = "No selected file"
)

// APIError represents a structured API error response.
// Only Message is sent to the client, as {"error": "<message>"}.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"-"`
	Message string `json:"error"`
	cause   error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewMissingFileError creates the 400 returned when the multipart body has no file part.
func NewMissingFileError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "MISSING_FILE",
		Message: MsgMissingFile,
	}
}

// NewEmptyFilenameError creates the 400 returned when the file part has an empty filename.
func NewEmptyFilenameError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "EMPTY_FILENAME",
		Message: MsgEmptyFilename,
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
		cause:   cause,
	}
}

// ErrorHandler writes every error as a JSON {"error": ...} body.
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		apiErr  *APIError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
			cause:   httpErr.Internal,
		}
	default:
		apiErr = NewInternalError(http.StatusText(http.StatusInternalServerError), err)
	}

	if apiErr.Status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(apiErr.Status)
	} else {
		writeErr = c.JSON(apiErr.Status, apiErr)
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

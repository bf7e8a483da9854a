package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jinmai-creation/internal/pipeline"
)

// Error messages returned to API clients.
const (
	msgEmptyBody       = "请求数据不能为空"
	msgBrandNotFound   = "品牌不存在"
	msgCreationFailed  = "AI创作失败"
	msgRetrySuggestion = "请检查输入参数或稍后重试"
	msgInvalidBrandID  = "品牌ID格式错误"
	msgMalformedBody   = "请求数据格式错误"
	msgFieldTooLong    = "字段长度超出限制"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var notFoundErr *pipeline.BrandNotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CreationError is the body of a failed creation that was not the client's fault.
type CreationError struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// writeCreationError maps err to a status code and its JSON error shape.
func (s *Server) writeCreationError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	switch status {
	case http.StatusBadRequest:
		var validationErr *ErrValidation
		errors.As(err, &validationErr)
		body := map[string]string{"error": validationErr.Message}
		if validationErr.Field != "" {
			body["field"] = validationErr.Field
		}
		s.jsonResponse(w, status, body)
	case http.StatusNotFound:
		s.errorResponse(w, status, msgBrandNotFound)
	default:
		s.jsonResponse(w, status, CreationError{
			Error:      msgCreationFailed,
			Message:    err.Error(),
			Suggestion: msgRetrySuggestion,
		})
	}
}

package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// FromError maps the error taxonomy onto HTTP statuses.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "store_unavailable", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

// BindError reports a JSON binding failure with field-level detail
// when the underlying cause is a validator error.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		RespondError(c, http.StatusBadRequest, "invalid_request",
			apperrors.Invalid(strings.ToLower(fe.Field()), "failed validation on '"+fe.Tag()+"'"))
		return
	}
	RespondError(c, http.StatusBadRequest, "invalid_request", err)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/aarogyaai/aarogya-backend/internal/pkg/errors"
)

// parseLimit reads the limit query parameter. Absent means the
// endpoint default; out of [1,max] is rejected rather than clamped.
func parseLimit(c *gin.Context, def, max int64) (int64, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Invalid("limit", "must be an integer")
	}
	if limit < 1 || limit > max {
		return 0, apperrors.Invalid("limit", "must be between 1 and "+strconv.FormatInt(max, 10))
	}
	return limit, nil
}

package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const DateLayout = "2006-01-02"

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, NewValidationError("Invalid " + name)
	}
	return id, nil
}

// QueryDate parses an optional YYYY-MM-DD query value. A missing value yields nil.
func QueryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, NewValidationError(name + " must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

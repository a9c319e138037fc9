package httputil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// PositiveInt returns the query parameter as a positive integer. If the
// parameter is not set, not a number or not positive, 0 is returned.
func PositiveInt(c *gin.Context, name string) int {
	i, err := strconv.Atoi(c.Query(name))
	if err != nil || i < 1 {
		return 0
	}

	return i
}

// Time parses the query parameter as RFC 3339 time or as a date
// (2006-01-02, in the server time zone). It returns the zero time if the
// parameter is not set.
func Time(c *gin.Context, name string) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(time.DateOnly, value, time.Local)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s must be an RFC 3339 time or a date in YYYY-MM-DD format", ErrInvalidQuery, name)
}

package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination defaults and bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ParsePagination parses the offset and limit query parameters. Offset defaults to 0
// and limit to DefaultLimit; limit must be between 1 and MaxLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxLimit)
	}

	return offset, limit, nil
}

// ParseBoolQuery reads an optional boolean query parameter.
func ParseBoolQuery(c *gin.Context, name string, defaultValue bool) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter: must be true or false", name)
	}

	return value, nil
}

package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

const maxPageSize = 100

// page reads page/page_size into limit and offset. Pages whose offset would
// overflow an int are rejected.
func page(c *fiber.Ctx) (limit, offset int, err error) {
	p := parseInt(c.Query("page"), 1)
	size := parseInt(c.Query("page_size"), 20)
	if size > maxPageSize {
		size = maxPageSize
	}
	if p-1 > math.MaxInt/size {
		return 0, 0, apperrors.NewValidationError("page out of range", nil)
	}
	return size, (p - 1) * size, nil
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// optionalInt parses a non-negative integer query value; empty yields nil.
func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return nil, apperrors.NewValidationError(key+" must be a non-negative integer", nil)
	}
	return &parsed, nil
}

// optionalFloat parses a float query value; empty yields nil.
func optionalFloat(c *fiber.Ctx, key string) (*float64, error) {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil || parsed < 0 {
		return nil, apperrors.NewValidationError(key+" must be a non-negative number", nil)
	}
	return &parsed, nil
}

// jobID reads the :id path segment.
func jobID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("job id must be a positive integer", nil)
	}
	return id, nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

package helper

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MaxSchoolLen = 255

// SchoolParam decodes the :school path segment, which clients send
// URL-escaped. The result is a copy and outlives the request.
func SchoolParam(c *fiber.Ctx) (string, error) {
	school, err := url.PathUnescape(c.Params("school"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid school")
	}
	school = strings.Clone(strings.TrimSpace(school))
	if school == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "school is required")
	}
	if len(school) > MaxSchoolLen {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "school is too long")
	}
	return school, nil
}

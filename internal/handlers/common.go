// Package handlers implements the HTTP layer: request parsing, validation and
// translating service/repository errors into responses.
package handlers

import (
	"errors"

	"lpaflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// immutable fields stripped from every PATCH payload before it reaches gorm.
var protectedColumns = []string{"id", "created_at", "updated_at", "deleted_at"}

// parseUpdatePayload reads a PATCH body into a column map and pulls out the
// record id. The remaining keys are applied as-is; json tags match column
// names across the models.
func parseUpdatePayload(c *fiber.Ctx) (string, map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return "", nil, err
	}

	id, _ := body["id"].(string)
	for _, col := range protectedColumns {
		delete(body, col)
	}
	return id, body, nil
}

// repoError maps a repository failure to 404 or 500.
func repoError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound(c, notFoundMessage)
	}
	return response.ServerError(c, err.Error())
}

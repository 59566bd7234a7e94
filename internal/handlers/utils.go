package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the owner context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getOwnerIDFromContext extracts the authenticated owner ID from context.
// Returns ErrUnauthorized if the owner ID is missing or invalid.
func getOwnerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerIDValue := c.Get("owner_id")
	if ownerIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	ownerID, ok := ownerIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return ownerID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// splitTagsParam splits a comma-separated tags query parameter, dropping blanks
func splitTagsParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

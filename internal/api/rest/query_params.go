package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// ParseSelectionQuery binds the dashboard selection parameters
// (view, year, round, team, sort, lens, selected_type, selected_key).
// Values are kept raw; the executor normalizes them.
func ParseSelectionQuery(c *gin.Context) (domain.RawSelection, error) {
	var raw domain.RawSelection
	if err := c.ShouldBindQuery(&raw); err != nil {
		return domain.RawSelection{}, fmt.Errorf("invalid query parameters: %w", err)
	}
	return raw, nil
}

// ParsePickKeyParam parses a TEAM-YEAR-ROUND path parameter, case-insensitively
func ParsePickKeyParam(c *gin.Context, name string) (domain.PickKey, error) {
	value := strings.ToUpper(strings.TrimSpace(c.Param(name)))
	if value == "" {
		return domain.PickKey{}, fmt.Errorf("%s is required", name)
	}

	key, ok := domain.ParsePickKey(value)
	if !ok {
		return domain.PickKey{}, fmt.Errorf("%w %q, expected TEAM-YEAR-ROUND", domain.ErrInvalidPickKey, value)
	}
	return key, nil
}

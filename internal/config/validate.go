package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectx/internal/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the limits, the player list and the log level.
func (c Config) Validate() error {
	l := c.Limits
	if l.MinRows < 1 || l.MinRows > l.MaxRows {
		return ValidationError{
			Code:    "INVALID_ROWS",
			Message: fmt.Sprintf("row limits [%d, %d] are not a valid range", l.MinRows, l.MaxRows),
		}
	}
	if l.MinColumns < 1 || l.MinColumns > l.MaxColumns {
		return ValidationError{
			Code:    "INVALID_COLUMNS",
			Message: fmt.Sprintf("column limits [%d, %d] are not a valid range", l.MinColumns, l.MaxColumns),
		}
	}
	if l.MinPlayers < 2 || l.MinPlayers > l.MaxPlayers {
		return ValidationError{
			Code:    "INVALID_PLAYERS",
			Message: fmt.Sprintf("player limits [%d, %d] must start at 2 or more", l.MinPlayers, l.MaxPlayers),
		}
	}
	if len(c.Players) > l.MaxPlayers {
		return ValidationError{
			Code:    "TOO_MANY_PLAYERS",
			Message: fmt.Sprintf("%d players configured, limit is %d", len(c.Players), l.MaxPlayers),
		}
	}

	seen := make(map[core.Color]string)
	for i, p := range c.Players {
		if p.Color == "" {
			continue
		}
		color, ok := core.ParseColor(p.Color)
		if !ok {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("player %d has unknown colour %q", i+1, p.Color),
			}
		}
		if other, dup := seen[color]; dup {
			return ValidationError{
				Code:    "DUPLICATE_COLOR",
				Message: fmt.Sprintf("players %s and %q both use %s", other, p.Name, color),
			}
		}
		seen[color] = fmt.Sprintf("%q", p.Name)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			return ValidationError{
				Code:    "INVALID_LOG_LEVEL",
				Message: fmt.Sprintf("unknown log level %q", c.Log.Level),
			}
		}
	}
	return nil
}

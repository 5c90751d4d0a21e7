package team

import (
	"fmt"

	"github.com/riskibarqy/gamelog/internal/domain/sport"
)

// Team is a club or franchise. No team plays in more than one sport.
type Team struct {
	ID      string
	Name    string
	Logo    string
	Sport   sport.Sport
	Country string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

package league

import (
	"fmt"

	"github.com/riskibarqy/gamelog/internal/domain/sport"
)

// League is a competition that belongs to exactly one sport.
type League struct {
	ID      string
	Name    string
	Logo    string
	Sport   sport.Sport
	Country string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if _, ok := sport.ByKey(l.Sport.ID); !ok {
		return fmt.Errorf("league %s has unsupported sport %q", l.ID, l.Sport.ID)
	}

	return nil
}

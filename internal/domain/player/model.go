package player

import "fmt"

// Player is a person who sits down at the table. Created once, never
// mutated or deleted.
type Player struct {
	ID   int64
	Name string
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

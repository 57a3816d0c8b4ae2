package location

import "fmt"

// Location is a venue where matches take place.
type Location struct {
	ID   int64
	Name string
}

func (l Location) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("location name is required")
	}

	return nil
}

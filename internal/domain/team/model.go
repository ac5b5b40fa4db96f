package team

import "fmt"

// Team is one club whose matches the dashboard tracks. SheetRange names the
// spreadsheet tab and cell range holding the club's rows; empty means the
// service-wide default range.
type Team struct {
	ID         string
	Name       string
	Short      string
	SheetRange string
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

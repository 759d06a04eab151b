package models

import "time"

// Trip is the single journey being planned. Dates are date-only strings in
// YYYY-MM-DD format; EndDate is never before StartDate (enforced at the
// creation surface, not here).
type Trip struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD format
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD format
	CreatedAt   time.Time `json:"created_at"`
}

// DailyNote is a free-text annotation attached to one day of the trip.
// Day is 1-based (day 1 = start date); several notes may share a day.
type DailyNote struct {
	ID   string `json:"id"`
	Day  int    `json:"day"`
	Note string `json:"note"`
}

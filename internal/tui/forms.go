package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
	"github.com/SnehaBakshi14/TripVibe/internal/validation"
)

type TripFormModel struct {
	Name        string
	Destination string
	StartDate   string
	EndDate     string
}

type NoteFormModel struct {
	Day  int
	Text string
}

type ItemFormModel struct {
	Text     string
	Category models.Category
}

func newTripForm(fm *TripFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip Name").
				Value(&fm.Name).
				Validate(validation.ValidateRequired("trip name")),
			huh.NewInput().
				Title("Destination").
				Value(&fm.Destination).
				Validate(validation.ValidateRequired("destination")),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Value(&fm.StartDate).
				Validate(validation.ValidateDate),
			huh.NewInput().
				Title("End Date (YYYY-MM-DD)").
				Value(&fm.EndDate).
				Validate(func(s string) error {
					if err := validation.ValidateDate(s); err != nil {
						return err
					}
					start, err := time.Parse(dateutil.DateFormat, fm.StartDate)
					if err != nil {
						return nil
					}
					end, _ := time.Parse(dateutil.DateFormat, s)
					if end.Before(start) {
						return fmt.Errorf("end date must be on or after the start date")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newNoteForm(fm *NoteFormModel, days []dateutil.Day) *huh.Form {
	options := make([]huh.Option[int], len(days))
	for i, day := range days {
		label := fmt.Sprintf("Day %d", day.Number)
		if short := dateutil.FormatShortDate(day.Date); short != "" {
			label = fmt.Sprintf("Day %d (%s)", day.Number, short)
		}
		options[i] = huh.NewOption(label, day.Number)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Day").
				Options(options...).
				Value(&fm.Day),
			huh.NewInput().
				Title("Note").
				Value(&fm.Text).
				Validate(validation.ValidateRequired("note")),
		),
	).WithTheme(huh.ThemeDracula())
}

func newItemForm(fm *ItemFormModel) *huh.Form {
	categories := models.Categories()
	options := make([]huh.Option[models.Category], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(string(c), c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Item").
				Value(&fm.Text).
				Validate(validation.ValidateRequired("item")),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(options...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

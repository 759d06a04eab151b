package cli

import (
	"fmt"
	"strings"

	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
)

type NoteAddCmd struct {
	Day  int      `arg:"" help:"Trip day number (1 = start date)."`
	Text []string `arg:"" help:"Note text."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if !planner.HasTrip() {
		return fmt.Errorf("no trip planned, run 'tripvibe trip create' first")
	}
	if c.Day < 1 || c.Day > planner.DayCount() {
		return fmt.Errorf("day %d is outside the trip (1-%d)", c.Day, planner.DayCount())
	}

	note, err := planner.AddNote(c.Day, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	if note == nil {
		fmt.Println("Empty note, nothing added.")
		return nil
	}

	fmt.Printf("Added note for day %d (ID: %s)\n", note.Day, note.ID)
	return nil
}

type NoteEditCmd struct {
	ID   string   `arg:"" help:"Note id."`
	Text []string `arg:"" help:"Replacement text."`
}

func (c *NoteEditCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if err := planner.UpdateNote(c.ID, strings.Join(c.Text, " ")); err != nil {
		return err
	}
	fmt.Printf("Updated note %s\n", c.ID)
	return nil
}

type NoteRmCmd struct {
	ID string `arg:"" help:"Note id."`
}

func (c *NoteRmCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if err := planner.RemoveNote(c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed note %s\n", c.ID)
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if !planner.HasTrip() {
		fmt.Println("No trip planned.")
		return nil
	}

	days := planner.Days()
	total := 0
	for _, day := range days {
		notes := planner.NotesForDay(day.Number)
		fmt.Printf("Day %d - %s\n", day.Number, dateutil.FormatShortDate(day.Date))
		if len(notes) == 0 {
			fmt.Println("  (no notes)")
			continue
		}
		for _, n := range notes {
			fmt.Printf("  [%s] %s\n", n.ID, n.Note)
			total++
		}
	}
	fmt.Printf("\n%d notes over %d days\n", total, len(days))
	return nil
}

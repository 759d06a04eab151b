package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SnehaBakshi14/TripVibe/internal/countdown"
	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
	"github.com/SnehaBakshi14/TripVibe/internal/trip"
	"github.com/SnehaBakshi14/TripVibe/internal/validation"
)

type TripCreateCmd struct {
	Name        string `short:"n" help:"Trip name." required:""`
	Destination string `short:"d" help:"Destination." required:""`
	Start       string `short:"s" help:"Start date (YYYY-MM-DD)." required:""`
	End         string `short:"e" help:"End date (YYYY-MM-DD)." required:""`
	Force       bool   `short:"f" help:"Replace an existing trip without asking."`
}

func (c *TripCreateCmd) Run(ctx *Context) error {
	if errs := validation.ValidateTrip(c.Name, c.Destination, c.Start, c.End); errs.HasErrors() {
		return fmt.Errorf("invalid trip:\n%s", errs.FormatReport())
	}

	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if planner.HasTrip() && !c.Force {
		existing := planner.Trip()
		fmt.Printf("A trip already exists: %s to %s\n", existing.Name, existing.Destination)
		if !confirm("Replace it? All of its notes and packing progress stay as they are.") {
			fmt.Println("Trip creation cancelled.")
			return nil
		}
	}

	created, err := planner.CreateTrip(trip.Data{
		Name:        c.Name,
		Destination: c.Destination,
		StartDate:   c.Start,
		EndDate:     c.End,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created trip: %s to %s, %s - %s (%s)\n",
		created.Name, created.Destination,
		dateutil.FormatDate(created.StartDate), dateutil.FormatDate(created.EndDate),
		dateutil.DurationText(created.StartDate, created.EndDate))
	if url, ok := planner.TripURL(); ok {
		fmt.Printf("Share link: %s\n", url)
	}
	return nil
}

type TripShowCmd struct{}

func (c *TripShowCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	active := planner.Trip()
	if active == nil {
		fmt.Println("No trip planned. Run 'tripvibe trip create' to start.")
		return nil
	}

	fmt.Printf("%s\n", active.Name)
	fmt.Printf("  Destination: %s\n", active.Destination)
	fmt.Printf("  Dates:       %s - %s (%s)\n",
		dateutil.FormatDate(active.StartDate), dateutil.FormatDate(active.EndDate),
		dateutil.DurationText(active.StartDate, active.EndDate))

	b := countdown.Until(planner.CountdownTarget(), time.Now())
	if b.Expired {
		fmt.Println("  Countdown:   trip has started!")
	} else {
		fmt.Printf("  Countdown:   %dd %02dh %02dm %02ds\n", b.Days, b.Hours, b.Minutes, b.Seconds)
	}

	stats := planner.PackingStats()
	fmt.Printf("  Packing:     %d/%d packed (%d%%)\n", stats.Packed, stats.Total, stats.Percentage)
	fmt.Printf("  Notes:       %d\n", len(planner.Notes()))
	return nil
}

type TripResetCmd struct {
	Force bool `short:"f" help:"Reset without asking."`
}

func (c *TripResetCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if !planner.HasTrip() && len(planner.Notes()) == 0 && len(planner.PackingItems()) == 0 {
		fmt.Println("Nothing to reset.")
		return nil
	}

	if !c.Force {
		fmt.Println("This removes the trip, all daily notes and the entire packing list.")
		if !confirm("Continue?") {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := planner.Reset(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Println("Trip data cleared.")
	return nil
}

type TripShareCmd struct{}

func (c *TripShareCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	url, ok := planner.TripURL()
	if !ok {
		fmt.Println("No trip planned, nothing to share.")
		return nil
	}

	fmt.Println(url)
	fmt.Println("Note: the link resolves only where this trip is stored locally.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

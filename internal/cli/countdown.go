package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/SnehaBakshi14/TripVibe/internal/countdown"
	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
)

type CountdownCmd struct {
	Watch bool `short:"w" help:"Keep refreshing once per second until interrupted."`
}

func (c *CountdownCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	active := planner.Trip()
	if active == nil {
		fmt.Println("No trip planned. Run 'tripvibe trip create' to start a countdown.")
		return nil
	}

	target := planner.CountdownTarget()
	label := fmt.Sprintf("%s (%s, departing %s)", active.Name, active.Destination, dateutil.FormatDate(active.StartDate))

	if !c.Watch {
		printBreakdown(label, countdown.Until(target, time.Now()))
		return nil
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	countdown.Watch(watchCtx, target, countdown.DefaultInterval, func(b countdown.Breakdown) {
		fmt.Print("\r\033[K")
		printBreakdown(label, b)
		if !b.Expired {
			// Stay on one line while ticking.
			fmt.Print("\033[A")
		}
	})
	fmt.Println()
	return nil
}

func printBreakdown(label string, b countdown.Breakdown) {
	if b.Expired {
		fmt.Printf("%s - trip has started!\n", label)
		return
	}
	fmt.Printf("%s - %dd %02dh %02dm %02ds\n", label, b.Days, b.Hours, b.Minutes, b.Seconds)
}

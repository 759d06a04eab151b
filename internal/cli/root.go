package cli

import (
	"fmt"
	"os"

	"github.com/SnehaBakshi14/TripVibe/internal/backup"
	"github.com/SnehaBakshi14/TripVibe/internal/storage"
	"github.com/SnehaBakshi14/TripVibe/internal/trip"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Store storage.Provider

	// TripID is the id from a shareable link (--trip). It can only resolve
	// against what is already in the local store; there is no remote lookup.
	TripID string
}

// loadPlanner loads storage and builds the planner on top of it.
func (ctx *Context) loadPlanner() (*trip.Planner, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}

	planner, err := trip.NewPlanner(ctx.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip data: %w", err)
	}

	if ctx.TripID != "" {
		ctx.resolveSharedTrip(planner)
	}

	return planner, nil
}

// resolveSharedTrip checks a shareable-link id against the local store.
func (ctx *Context) resolveSharedTrip(planner *trip.Planner) {
	active := planner.Trip()
	switch {
	case active == nil:
		fmt.Fprintf(os.Stderr, "Warning: trip %s is not in local storage; shared links only resolve on the device that created them\n", ctx.TripID)
	case active.ID != ctx.TripID:
		fmt.Fprintf(os.Stderr, "Warning: trip %s does not match the locally stored trip %s\n", ctx.TripID, active.ID)
	}
}

// PerformAutomaticBackup creates a backup of the storage file, warning on
// failure rather than interrupting the command.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

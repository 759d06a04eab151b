package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/SnehaBakshi14/TripVibe/internal/cli"
	"github.com/SnehaBakshi14/TripVibe/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db or .json)." type:"path" default:"~/.config/tripvibe/tripvibe.db"`
	Trip    string `help:"Trip id from a shareable link." name:"trip"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize tripvibe storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Countdown cli.CountdownCmd `cmd:"" help:"Show the departure countdown."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run storage and environment diagnostics."`
	Trips     struct {
		Create cli.TripCreateCmd `cmd:"" help:"Plan a new trip."`
		Show   cli.TripShowCmd   `cmd:"" help:"Show the current trip."`
		Reset  cli.TripResetCmd  `cmd:"" help:"Clear the trip and everything attached to it."`
		Share  cli.TripShareCmd  `cmd:"" help:"Print the shareable trip link."`
	} `cmd:"" name:"trip" help:"Manage the trip."`
	Note struct {
		Add  cli.NoteAddCmd  `cmd:"" help:"Add a note to a trip day."`
		Edit cli.NoteEditCmd `cmd:"" help:"Edit a note."`
		Rm   cli.NoteRmCmd   `cmd:"" help:"Remove a note."`
		List cli.NoteListCmd `cmd:"" help:"List notes grouped by day."`
	} `cmd:"" help:"Manage daily notes."`
	Pack struct {
		Add    cli.PackAddCmd    `cmd:"" help:"Add a packing item."`
		Toggle cli.PackToggleCmd `cmd:"" help:"Toggle an item's packed state."`
		Rm     cli.PackRmCmd     `cmd:"" help:"Remove a packing item."`
		List   cli.PackListCmd   `cmd:"" help:"List packing items by category."`
		Clear  cli.PackClearCmd  `cmd:"" help:"Remove all packed items."`
		Stats  cli.PackStatsCmd  `cmd:"" help:"Show packing progress."`
	} `cmd:"" help:"Manage the packing list."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tripvibe"),
		kong.Description("Trip countdown, daily planner and packing checklist"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		TripID: CLI.Trip,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/SnehaBakshi14/TripVibe/internal/backup"
	"github.com/SnehaBakshi14/TripVibe/internal/trip"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	planner, err := ctx.loadPlanner()
	if err != nil {
		fmt.Printf("FAIL storage reachable: %v\n", err)
		hasError = true
	} else {
		fmt.Println("ok   storage reachable")
	}

	// Check 2: orphaned data. The three collections are persisted
	// independently, so an interrupted reset can leave notes or packing
	// items without a trip. Surfaced here, never auto-repaired.
	if planner != nil {
		if err := checkOrphans(planner); err != nil {
			fmt.Printf("warn orphaned data: %v\n", err)
		} else {
			fmt.Println("ok   no orphaned data")
		}
	} else {
		fmt.Println("skip orphaned data (storage not reachable)")
	}

	// Check 3: backups present
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("warn backups: %v\n", err)
	} else {
		fmt.Println("ok   backups present")
	}

	// Check 4: single writer. Storage has no cross-process coordination;
	// two live processes race with last-write-wins.
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("warn concurrent processes: %v\n", err)
	} else {
		fmt.Println("ok   no concurrent tripvibe processes")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("FAIL clock: %v\n", err)
		hasError = true
	} else {
		fmt.Println("ok   clock sane")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

func checkOrphans(planner *trip.Planner) error {
	if planner.HasTrip() {
		return nil
	}

	notes := len(planner.Notes())
	items := len(planner.PackingItems())
	if notes == 0 && items == 0 {
		return nil
	}
	return fmt.Errorf("%d notes and %d packing items exist without a trip (an earlier reset may have been interrupted; 'tripvibe trip reset' clears them)", notes, items)
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups yet; run 'tripvibe backup create'")
	}

	newest := backups[0].Timestamp
	if time.Since(newest) > 14*24*time.Hour {
		return fmt.Errorf("newest backup is from %s", newest.Format("2006-01-02"))
	}
	return nil
}

func checkConcurrentProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not enumerate processes: %w", err)
	}

	self := os.Getpid()
	binary := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == binary {
			return fmt.Errorf("another %s process is running (pid %d); concurrent writers can lose data", binary, p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2024 {
		return fmt.Errorf("system clock reports %s, which looks wrong", now.Format(time.RFC3339))
	}
	return nil
}

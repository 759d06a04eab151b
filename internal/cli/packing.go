package cli

import (
	"fmt"
	"strings"

	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

type PackAddCmd struct {
	Text     []string `arg:"" help:"Item description."`
	Category string   `short:"c" help:"Category (Essentials|Clothing|Toiletries|Electronics|Documents|Miscellaneous)." default:"Miscellaneous"`
}

func (c *PackAddCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	item, err := planner.AddPackingItem(strings.Join(c.Text, " "), models.Category(c.Category))
	if err != nil {
		return err
	}
	if item == nil {
		fmt.Println("Empty item, nothing added.")
		return nil
	}

	fmt.Printf("Added %q to %s (ID: %s)\n", item.Text, item.Category, item.ID)
	return nil
}

type PackToggleCmd struct {
	ID string `arg:"" help:"Item id."`
}

func (c *PackToggleCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if err := planner.TogglePackingItem(c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled item %s\n", c.ID)
	return nil
}

type PackRmCmd struct {
	ID string `arg:"" help:"Item id."`
}

func (c *PackRmCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	if err := planner.RemovePackingItem(c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed item %s\n", c.ID)
	return nil
}

type PackListCmd struct{}

func (c *PackListCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	items := planner.PackingItems()
	if len(items) == 0 {
		fmt.Println("Packing list is empty.")
		return nil
	}

	byCategory := make(map[models.Category][]models.PackingItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	for _, category := range models.Categories() {
		group := byCategory[category]
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s:\n", category)
		for _, item := range group {
			mark := " "
			if item.Packed {
				mark = "x"
			}
			fmt.Printf("  [%s] %s (ID: %s)\n", mark, item.Text, item.ID)
		}
	}

	stats := planner.PackingStats()
	fmt.Printf("\n%d/%d packed (%d%%)\n", stats.Packed, stats.Total, stats.Percentage)
	return nil
}

type PackClearCmd struct{}

func (c *PackClearCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	before := planner.PackingStats()
	if err := planner.ClearPackedItems(); err != nil {
		return err
	}
	fmt.Printf("Removed %d packed items.\n", before.Packed)
	return nil
}

type PackStatsCmd struct{}

func (c *PackStatsCmd) Run(ctx *Context) error {
	planner, err := ctx.loadPlanner()
	if err != nil {
		return err
	}

	stats := planner.PackingStats()
	fmt.Printf("Total:  %d\n", stats.Total)
	fmt.Printf("Packed: %d\n", stats.Packed)
	fmt.Printf("Done:   %d%%\n", stats.Percentage)
	return nil
}

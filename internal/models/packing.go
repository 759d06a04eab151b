package models

// Category classifies packing items into a fixed set of groups.
type Category string

const (
	CategoryEssentials    Category = "Essentials"
	CategoryClothing      Category = "Clothing"
	CategoryToiletries    Category = "Toiletries"
	CategoryElectronics   Category = "Electronics"
	CategoryDocuments     Category = "Documents"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryEssentials,
		CategoryClothing,
		CategoryToiletries,
		CategoryElectronics,
		CategoryDocuments,
		CategoryMiscellaneous,
	}
}

// CoerceCategory maps any unrecognized category to Miscellaneous.
func CoerceCategory(c Category) Category {
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return CategoryMiscellaneous
}

// PackingItem is a checklist entry with a category and packed state.
type PackingItem struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Packed   bool     `json:"packed"`
	Category Category `json:"category"`
}

// DefaultPackingItems returns the starter checklist seeded for a new trip.
// IDs are assigned by the caller.
func DefaultPackingItems() []PackingItem {
	return []PackingItem{
		{Text: "Passport/ID", Category: CategoryEssentials},
		{Text: "Phone charger", Category: CategoryElectronics},
		{Text: "Toothbrush", Category: CategoryToiletries},
		{Text: "T-shirts", Category: CategoryClothing},
		{Text: "Medication", Category: CategoryEssentials},
	}
}

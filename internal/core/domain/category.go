package domain

// Category is a static reference entity describing an income source.
// The set is fixed; entries may still carry a category id that is not in the
// table (a soft reference), which is rendered with a fallback label.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// DefaultCategories is the fixed category table.
var DefaultCategories = []Category{
	{ID: "asif", Name: "ASIF", Color: "#3B82F6", Description: "ASIF related work"},
	{ID: "atik", Name: "ATIK", Color: "#10B981", Description: "ATIK related work"},
	{ID: "freelance", Name: "Freelance", Color: "#F59E0B", Description: "Freelance projects"},
	{ID: "consulting", Name: "Consulting", Color: "#8B5CF6", Description: "Consulting work"},
	{ID: "others", Name: "Others", Color: "#6B7280", Description: "Other income sources"},
}

// CategoryByID looks up a category in the static table.
func CategoryByID(id string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName resolves a category id to its display name. Dangling
// references fall back to the raw id.
func CategoryName(id string) string {
	if c, ok := CategoryByID(id); ok {
		return c.Name
	}
	return id
}

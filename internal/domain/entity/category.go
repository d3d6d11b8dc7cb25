package entity

import "strings"

// categoryColors maps short category names to marker colors.
var categoryColors = map[string]string{
	"Academic Calendar":    "#8B2A2A",
	"Advising":             "#007bff",
	"Arts":                 "#e83e8c",
	"Athletics":            "#28a745",
	"Biology":              "#17a2b8",
	"Careers":              "#fd7e14",
	"Education":            "#6f42c1",
	"Entrepreneurship":     "#20c997",
	"Faculty":              "#6c757d",
	"Faith":                "#ffc107",
	"Government":           "#dc3545",
	"Graduate School":      "#343a40",
	"Greek Houses":         "#7952b3",
	"History":              "#ff6b6b",
	"Housing":              "#fd7e14",
	"Human Resources":      "#6c757d",
	"Humanities":           "#4dabf7",
	"Identity":             "#cc5de8",
	"International":        "#339af0",
	"Libraries":            "#20c997",
	"Mathematics":          "#845ef7",
	"Philosophy":           "#adb5bd",
	"Physical Sciences":    "#51cf66",
	"Psychology":           "#ff922b",
	"Research":             "#a5d8ff",
	"Service":              "#69db7c",
	"Social Sciences":      "#fcc419",
	"Student Clubs":        "#748ffc",
	"Student Publications": "#9775fa",
	"Training":             "#5c7cfa",
	"University Services":  "#6c757d",
}

const defaultCategoryColor = "#495057"

// ShortCategoryName extracts the display name from a full category string,
// e.g. "Arts, Performance" -> "Arts".
func ShortCategoryName(fullName string) string {
	name, _, _ := strings.Cut(fullName, ",")

	return strings.TrimSpace(name)
}

// CategoryColor returns the marker color for an event's primary category.
func CategoryColor(categories []string) string {
	if len(categories) == 0 {
		return defaultCategoryColor
	}

	if color, ok := categoryColors[ShortCategoryName(categories[0])]; ok {
		return color
	}

	return defaultCategoryColor
}

// FormatCategories renders a category list for display, shortening each
// entry to its primary name.
func FormatCategories(categories []string) string {
	if len(categories) == 0 {
		return "Uncategorized"
	}

	short := make([]string, 0, len(categories))
	for _, cat := range categories {
		short = append(short, ShortCategoryName(cat))
	}

	return strings.Join(short, ", ")
}

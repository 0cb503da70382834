package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryTheme                         // Reading and switching the theme
	CategoryConfig                        // Configuration
	CategoryInfo                          // Version and other metadata
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryTheme:
		return "switch and inspect the theme"
	case CategoryConfig:
		return "configure shade"
	case CategoryInfo:
		return "about shade"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryTheme,
	CategoryConfig,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}

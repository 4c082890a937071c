package pipeline

import "unicode/utf16"

// Palette is the fixed set of series colors.
var Palette = []string{
	"#2563eb", "#dc2626", "#16a34a", "#d97706",
	"#7c3aed", "#0891b2", "#be123c", "#4f46e5",
	"#059669", "#ca8a04", "#0f766e", "#b91c1c",
}

// SeriesColor picks a stable palette color for a series name.
func SeriesColor(name string) string {
	if name == "" {
		name = "unknown"
	}
	var h int32
	for _, unit := range utf16.Encode([]rune(name)) {
		h = h<<5 - h + int32(unit)
	}
	i := int64(h)
	if i < 0 {
		i = -i
	}
	return Palette[i%int64(len(Palette))]
}

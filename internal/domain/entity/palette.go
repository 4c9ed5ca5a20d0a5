package entity

import "github.com/habit-tracker/backend/internal/domain/valueobject"

// TrackerEmojis is the fixed emoji palette offered when creating a
// tracker. The core only requires a non-empty emoji; the palette is the
// source of truth for clients.
var TrackerEmojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙌", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝️", "😪",
}

// trackerColorHexes are the 18 predefined swatches, in selection order.
var trackerColorHexes = []string{
	"#FD4C49", "#FF881E", "#007BFA", "#6E44FE", "#33CF69", "#E66DD4",
	"#F9D4D4", "#34A7FE", "#46E69D", "#35347C", "#FF674D", "#FF99CC",
	"#F6C48B", "#7994F5", "#832CF1", "#AD56DA", "#8D72E3", "#2FD058",
}

// TrackerColors returns the 18-swatch color palette in selection order.
func TrackerColors() []valueobject.Color {
	colors := make([]valueobject.Color, 0, len(trackerColorHexes))
	for _, hex := range trackerColorHexes {
		c, err := valueobject.ColorFromHex(hex)
		if err != nil {
			// The palette is a compile-time constant; a bad entry is a
			// programming error.
			panic("invalid palette color " + hex + ": " + err.Error())
		}
		colors = append(colors, c)
	}
	return colors
}

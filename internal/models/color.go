package models

import "strings"

// DefaultColor is used for item types without a dedicated colour.
const DefaultColor = "#97C2FC"

var typeColors = map[string]string{
	"Component": "#FF6B6B",
	"Service":   "#4ECDC4",
	"Database":  "#45B7D1",
	"API":       "#96CEB4",
	"Interface": "#FFEAA7",
	"Process":   "#DDA0DD",
	"System":    "#98D8C8",
}

// TypeColor returns the node colour for an item type.
func TypeColor(itemType string) string {
	if c, ok := typeColors[strings.TrimSpace(itemType)]; ok {
		return c
	}

	return DefaultColor
}

// Package models defines data types for the benefit item graph.
package models

import (
	"fmt"
	"slices"
	"strings"
)

// UnknownType is the type assigned to items whose type cell is blank.
const UnknownType = "Unknown"

// nameSeparator joins the parts of an item's display name.
const nameSeparator = " - "

// Item represents a benefit item row of the Mantle export.
type Item struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Label   string   `json:"node_name"`
	Type    string   `json:"type"`
	EventID string   `json:"event_id,omitempty"`
	Group   string   `json:"group,omitempty"`
	IsQuote bool     `json:"is_quote"`
	Color   string   `json:"color"`
	Flags   []string `json:"flags,omitempty"`
}

// ItemFields holds the raw cell values an Item is built from.
type ItemFields struct {
	ID      string
	Name    string
	Type    string
	EventID string
	Group   string
	IsQuote bool
	Flags   []string
}

// NewItem builds an Item from raw fields, formatting its display name and label.
func NewItem(f ItemFields) (*Item, error) {
	id := strings.TrimSpace(f.ID)
	if id == "" {
		return nil, ErrMissingID
	}

	itemType := strings.TrimSpace(f.Type)
	if itemType == "" {
		itemType = UnknownType
	}

	parts := NameParts(id, f.EventID, f.Group, f.Name)

	return &Item{
		ID:      id,
		Name:    strings.Join(parts, nameSeparator),
		Label:   parts[len(parts)-1],
		Type:    itemType,
		EventID: strings.TrimSpace(f.EventID),
		Group:   strings.TrimSpace(f.Group),
		IsQuote: f.IsQuote,
		Color:   TypeColor(itemType),
		Flags:   slices.Clone(f.Flags),
	}, nil
}

// NameParts trims the given values, drops empty ones and removes repeats
// while preserving order. The id is always the first part.
func NameParts(id string, rest ...string) []string {
	parts := make([]string, 0, len(rest)+1)
	seen := make(map[string]bool, len(rest)+1)

	for _, p := range append([]string{id}, rest...) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}

		seen[p] = true
		parts = append(parts, p)
	}

	return parts
}

// HasFlag reports whether the item carries the named focus flag.
func (i *Item) HasFlag(flag string) bool {
	return slices.Contains(i.Flags, flag)
}

// OptionText is the text shown for the item in the page's item picker.
func (i *Item) OptionText() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Type)
}

// Option returns the picker entry for the item.
func (i *Item) Option() ItemOption {
	return ItemOption{ID: i.ID, Text: i.OptionText(), Type: i.Type}
}

// ItemOption is the lightweight picker entry embedded in the page.
type ItemOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

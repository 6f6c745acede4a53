package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/render"
)

func pageData(t *testing.T) *render.PageData {
	t.Helper()

	items := make(map[string]models.Item)
	var options []models.ItemOption

	for _, f := range []models.ItemFields{
		{ID: "A", Name: "Alpha", Type: "Service"},
		{ID: "B", Name: "Beta </script><script>alert(1)</script>", Type: "Process"},
	} {
		item, err := models.NewItem(f)
		if err != nil {
			t.Fatalf("NewItem: %v", err)
		}
		items[item.ID] = *item
		options = append(options, item.Option())
	}

	return &render.PageData{
		Title:        "Mantle Network Explorer",
		Source:       "items.csv",
		Version:      "test",
		GeneratedAt:  time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		DefaultDepth: 2,
		MaxDepth:     4,
		Items:        items,
		Options:      options,
		Edges:        []models.Edge{{Source: "A", Target: "B", Kinds: []string{"params1"}}},
		Adjacency:    map[string][]string{"A": {"B"}, "B": {"A"}},
		Stats:        models.BuildReport{Items: 2, Edges: 1, QuotesFiltered: 3},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Render(&buf, pageData(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"<title>Mantle Network Explorer</title>",
		`<option value="2" selected>2 - Include 2nd level</option>`,
		`<option value="4">4 - Include 4th level</option>`,
		"1 - Direct relationships only",
		`"source":"A"`,
		`"text":"A - Alpha (Service)"`,
		"Make Main Node",
		"3 quote items excluded",
		"2026-01-02 03:04 UTC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if strings.Contains(out, "<script>alert(1)") {
		t.Error("item names must be escaped inside the script block")
	}

	if strings.Contains(out, `<option value="5"`) {
		t.Error("depth options must stop at the maximum depth")
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*render.PageData)
		wantErr error
	}{
		{"depth zero", func(d *render.PageData) { d.DefaultDepth = 0 }, models.ErrInvalidDepth},
		{"depth above max", func(d *render.PageData) { d.DefaultDepth = 5 }, models.ErrInvalidDepth},
		{"unknown root", func(d *render.PageData) { d.Root = "Z" }, models.ErrItemNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := pageData(t)
			tc.mutate(data)

			var buf bytes.Buffer
			if err := render.Render(&buf, data); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			if buf.Len() != 0 {
				t.Error("nothing should be written on error")
			}
		})
	}
}

func TestRender_InitialRoot(t *testing.T) {
	data := pageData(t)
	data.Root = "B"

	var buf bytes.Buffer
	if err := render.Render(&buf, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), `const initialRoot = "B"`) {
		t.Error("expected the initial root to be embedded")
	}
}

func TestPageData_Depths(t *testing.T) {
	d := &render.PageData{MaxDepth: 3}
	if got := d.Depths(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Depths() = %v, want [1 2 3]", got)
	}
}

// Package render writes the self-contained explorer page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/persistorai/mantle-explorer/internal/models"
)

//go:embed templates/*.tmpl
var templates embed.FS

var page = template.Must(
	template.New("explorer.html.tmpl").
		Funcs(template.FuncMap{"depthLabel": depthLabel}).
		ParseFS(templates, "templates/explorer.html.tmpl"),
)

// PageData is everything the page embeds. The client explores Items through
// Adjacency with the same level-by-level search the CLI uses.
type PageData struct {
	Title        string
	Source       string
	Version      string
	GeneratedAt  time.Time
	Root         string
	DefaultDepth int
	MaxDepth     int
	Items        map[string]models.Item
	Options      []models.ItemOption
	Edges        []models.Edge
	Adjacency    map[string][]string
	Stats        models.BuildReport
}

// Depths lists the selectable depths, 1 through MaxDepth.
func (d *PageData) Depths() []int {
	out := make([]int, 0, d.MaxDepth)
	for i := 1; i <= d.MaxDepth; i++ {
		out = append(out, i)
	}

	return out
}

// Render executes the page template into w. Nothing is written when the
// template fails.
func Render(w io.Writer, data *PageData) error {
	if data.MaxDepth < 1 || data.DefaultDepth < 1 || data.DefaultDepth > data.MaxDepth {
		return fmt.Errorf("%w: default %d, max %d", models.ErrInvalidDepth, data.DefaultDepth, data.MaxDepth)
	}

	if data.Root != "" {
		if _, ok := data.Items[data.Root]; !ok {
			return fmt.Errorf("%w: %s", models.ErrItemNotFound, data.Root)
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

func depthLabel(depth int) string {
	if depth == 1 {
		return "1 - Direct relationships only"
	}

	return fmt.Sprintf("%d - Include %s level", depth, ordinal(depth))
}

func ordinal(n int) string {
	suffix := "th"

	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

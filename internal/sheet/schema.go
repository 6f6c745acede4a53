package sheet

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// patternScanColumns bounds how far into the first data row pattern
// detection looks.
const patternScanColumns = 30

var groupKeywords = []string{"calculation", "input", "benefit", "service", "rate"}

// FieldRef names where a logical field lives: a header title, optional
// partial-match aliases, a fixed column letter fallback, and a key text for
// key/value layouts where the value sits in the column after the key.
type FieldRef struct {
	Header  string   `yaml:"header,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`
	Column  string   `yaml:"column,omitempty"`
	Key     string   `yaml:"key,omitempty"`
}

// RangeRef is a named inclusive span of relationship columns.
type RangeRef struct {
	Kind string `yaml:"kind"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Schema maps the logical fields of an item row to sheet columns.
type Schema struct {
	ID        FieldRef            `yaml:"id"`
	Name      FieldRef            `yaml:"name"`
	Type      FieldRef            `yaml:"type"`
	Event     FieldRef            `yaml:"event"`
	Group     FieldRef            `yaml:"group"`
	Quote     FieldRef            `yaml:"quote"`
	Flags     map[string]FieldRef `yaml:"flags,omitempty"`
	Relations []RangeRef          `yaml:"relations"`
	// DetectPatterns enables first-row pattern detection for unresolved
	// event and group columns.
	DetectPatterns bool `yaml:"detect_patterns"`
}

// Candidates are column indices tried in order for a field.
type Candidates []int

// Value returns the first non-empty cell among the candidate columns.
func (c Candidates) Value(row []string) string {
	for _, col := range c {
		if v := Cell(row, col); v != "" {
			return v
		}
	}

	return ""
}

// Resolution records how a field was mapped.
type Resolution struct {
	Field   string
	Columns Candidates
	Source  string
}

// String renders the resolution for diagnostics.
func (r Resolution) String() string {
	if len(r.Columns) == 0 {
		return fmt.Sprintf("%s: unresolved", r.Field)
	}

	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = ColumnName(c)
	}

	return fmt.Sprintf("%s: %s (%s)", r.Field, strings.Join(names, ","), r.Source)
}

// Columns is a Schema resolved against a concrete section.
type Columns struct {
	ID        Candidates
	Name      Candidates
	Type      Candidates
	Event     Candidates
	Group     Candidates
	Quote     Candidates
	Flags     map[string]Candidates
	Relations []Range
	Report    []Resolution
}

// FlagNames returns the resolved focus flag names in sorted order.
func (c *Columns) FlagNames() []string {
	names := make([]string, 0, len(c.Flags))
	for name := range c.Flags {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

type resolver struct {
	sec     *Section
	header  map[int]string
	claimed map[int]bool
	out     *Columns
}

// Resolve maps every schema field to candidate columns of sec.
func Resolve(sec *Section, schema Schema) (*Columns, error) {
	r := &resolver{
		sec:     sec,
		header:  sec.HeaderColumns(),
		claimed: make(map[int]bool),
		out:     &Columns{Flags: make(map[string]Candidates)},
	}

	fields := []struct {
		name string
		ref  FieldRef
		dst  *Candidates
	}{
		{"id", schema.ID, &r.out.ID},
		{"name", schema.Name, &r.out.Name},
		{"type", schema.Type, &r.out.Type},
		{"event", schema.Event, &r.out.Event},
		{"group", schema.Group, &r.out.Group},
		{"quote", schema.Quote, &r.out.Quote},
	}

	// Exact header matches claim their columns before partial matching runs.
	for _, f := range fields {
		*f.dst = r.exact(f.ref)
	}

	for _, f := range fields {
		if len(*f.dst) == 0 {
			*f.dst = r.partial(f.ref)
		}
	}

	for _, f := range fields {
		src := "header"
		if len(*f.dst) == 0 {
			*f.dst = r.keyed(f.ref)
			src = "key/value"
		}

		cand, err := r.withColumn(*f.dst, f.ref)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.name, err)
		}

		if len(*f.dst) == 0 && len(cand) > 0 {
			src = "column"
		}

		*f.dst = cand
		r.out.Report = append(r.out.Report, Resolution{Field: f.name, Columns: cand, Source: src})
	}

	if len(r.out.ID) == 0 {
		return nil, fmt.Errorf("field id: no header %q and no column configured", schema.ID.Header)
	}

	if schema.DetectPatterns {
		r.detectPatterns()
	}

	for _, name := range sortedKeys(schema.Flags) {
		ref := schema.Flags[name]
		cand := r.exact(ref)
		src := "header"

		if len(cand) == 0 {
			cand = r.keyed(ref)
			src = "key/value"
		}

		cand, err := r.withColumn(cand, ref)
		if err != nil {
			return nil, fmt.Errorf("flag %s: %w", name, err)
		}

		if len(cand) > 0 {
			r.out.Flags[name] = cand
		}

		r.out.Report = append(r.out.Report, Resolution{Field: "flag " + name, Columns: cand, Source: src})
	}

	for _, rr := range schema.Relations {
		rng, err := ParseRange(rr.Kind, rr.From, rr.To)
		if err != nil {
			return nil, err
		}

		r.out.Relations = append(r.out.Relations, rng)
	}

	return r.out, nil
}

func (r *resolver) exact(ref FieldRef) Candidates {
	want := normalizeHeader(ref.Header)
	if want == "" {
		return nil
	}

	for _, col := range sortedKeys(r.header) {
		if !r.claimed[col] && normalizeHeader(r.header[col]) == want {
			r.claimed[col] = true
			return Candidates{col}
		}
	}

	return nil
}

func (r *resolver) partial(ref FieldRef) Candidates {
	needles := make([]string, 0, len(ref.Aliases)+1)
	for _, n := range append([]string{ref.Header}, ref.Aliases...) {
		if n = normalizeHeader(n); n != "" {
			needles = append(needles, n)
		}
	}

	for _, col := range sortedKeys(r.header) {
		if r.claimed[col] {
			continue
		}

		h := normalizeHeader(r.header[col])
		for _, n := range needles {
			if strings.Contains(h, n) {
				r.claimed[col] = true
				return Candidates{col}
			}
		}
	}

	return nil
}

// keyed finds a column holding the key text in any data row and returns the
// column after it.
func (r *resolver) keyed(ref FieldRef) Candidates {
	key := strings.ToLower(strings.TrimSpace(ref.Key))
	if key == "" {
		return nil
	}

	width := 0
	for _, row := range r.sec.Rows {
		width = max(width, len(row))
	}

	for col := 0; col+1 < width; col++ {
		for _, row := range r.sec.Rows {
			if strings.Contains(strings.ToLower(Cell(row, col)), key) {
				return Candidates{col + 1}
			}
		}
	}

	return nil
}

func (r *resolver) withColumn(cand Candidates, ref FieldRef) (Candidates, error) {
	if ref.Column == "" {
		return cand, nil
	}

	col, err := ColumnIndex(ref.Column)
	if err != nil {
		return nil, err
	}

	r.claimed[col] = true

	if slices.Contains(cand, col) {
		return cand, nil
	}

	return append(cand, col), nil
}

func (r *resolver) detectPatterns() {
	if len(r.sec.Rows) == 0 || (len(r.out.Event) > 0 && len(r.out.Group) > 0) {
		return
	}

	row := r.sec.Rows[0]
	for col := 0; col < min(patternScanColumns, len(row)); col++ {
		if r.claimed[col] {
			continue
		}

		v := Cell(row, col)

		switch {
		case len(r.out.Event) == 0 && isEventValue(v):
			r.out.Event = Candidates{col}
			r.claimed[col] = true
			r.setReport("event", r.out.Event, "pattern")
		case len(r.out.Group) == 0 && isGroupValue(v):
			r.out.Group = Candidates{col}
			r.claimed[col] = true
			r.setReport("group", r.out.Group, "pattern")
		}
	}
}

func (r *resolver) setReport(field string, cand Candidates, src string) {
	for i := range r.out.Report {
		if r.out.Report[i].Field == field {
			r.out.Report[i] = Resolution{Field: field, Columns: cand, Source: src}
			return
		}
	}
}

// isEventValue matches values shaped like "6:Active retirement".
func isEventValue(v string) bool {
	return strings.Count(v, ":") == 1
}

// isGroupValue matches descriptive group titles such as "Benefit calculation".
func isGroupValue(v string) bool {
	if len(v) <= 5 || isDigits(v) {
		return false
	}

	switch v {
	case "TRUE", "FALSE", "0", "1":
		return false
	}

	lower := strings.ToLower(v)
	for _, kw := range groupKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}

func isDigits(v string) bool {
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return v != ""
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func sortedKeys[K int | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

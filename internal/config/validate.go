package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/sheet"
)

func (c *Config) validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}

	if err := c.validateSchema(); err != nil {
		return err
	}

	if err := c.validateTraversal(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q is not a valid level", c.LogLevel)
	}

	return nil
}

func (c *Config) validateInput() error {
	if c.DataStartRow < 0 {
		return fmt.Errorf("data_start_row must not be negative, got %d", c.DataStartRow)
	}

	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}

	return nil
}

func (c *Config) validateSchema() error {
	s := c.Schema

	if s.ID.Header == "" && s.ID.Column == "" {
		return fmt.Errorf("schema.id needs a header or a column")
	}

	refs := map[string]sheet.FieldRef{
		"id": s.ID, "name": s.Name, "type": s.Type,
		"event": s.Event, "group": s.Group, "quote": s.Quote,
	}
	for name, ref := range s.Flags {
		refs["flags."+name] = ref
	}

	for name, ref := range refs {
		if ref.Column == "" {
			continue
		}

		if _, err := sheet.ColumnIndex(ref.Column); err != nil {
			return fmt.Errorf("schema.%s.column: %w", name, err)
		}
	}

	if len(s.Relations) == 0 {
		return fmt.Errorf("schema.relations must list at least one range")
	}

	kinds := make(map[string]bool, len(s.Relations))
	for i, r := range s.Relations {
		if r.Kind == "" {
			return fmt.Errorf("schema.relations[%d] needs a kind", i)
		}

		if kinds[r.Kind] {
			return fmt.Errorf("schema.relations kind %q is repeated", r.Kind)
		}
		kinds[r.Kind] = true

		if _, err := sheet.ParseRange(r.Kind, r.From, r.To); err != nil {
			return fmt.Errorf("schema.relations[%d]: %w", i, err)
		}
	}

	return nil
}

func (c *Config) validateTraversal() error {
	if c.DefaultDepth < 1 || c.DefaultDepth > graph.MaxDepth {
		return fmt.Errorf("default_depth must be between 1 and %d, got %d", graph.MaxDepth, c.DefaultDepth)
	}

	if c.Focus.MaxDepth < 1 || c.Focus.MaxDepth > 50 {
		return fmt.Errorf("focus.max_depth must be between 1 and 50, got %d", c.Focus.MaxDepth)
	}

	for _, f := range c.Focus.Flags {
		if _, ok := c.Schema.Flags[f]; !ok {
			return fmt.Errorf("focus flag %q has no schema.flags entry", f)
		}
	}

	if c.Focus.Enabled && len(c.Focus.Flags) == 0 {
		return fmt.Errorf("focus.flags must not be empty when focus is enabled")
	}

	return nil
}

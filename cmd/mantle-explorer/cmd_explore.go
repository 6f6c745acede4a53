package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/models"
)

type exploreResult struct {
	*models.TraverseResult
}

func (r exploreResult) table() ([]string, [][]string) {
	rows := make([][]string, len(r.Nodes))
	for i, n := range r.Nodes {
		rows[i] = []string{n.ID, strconv.Itoa(n.Depth), n.Type, n.Name}
	}
	return []string{"ID", "DEPTH", "TYPE", "NAME"}, rows
}

func (r exploreResult) quiet() []string {
	return r.NodeIDs()
}

func newExploreCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "explore <csv> <item>",
		Short: "Print the items within a depth of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = cfg.DefaultDepth
			}
			if depth < 0 || depth > graph.MaxDepth {
				return fmt.Errorf("%w: %d (want 0..%d)", models.ErrInvalidDepth, depth, graph.MaxDepth)
			}

			ds, err := explorer.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := explorer.Traverse(ds, args[1], depth)
			return output(cmd.OutOrStdout(), exploreResult{result})
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "Traversal depth (default from config)")

	return cmd
}

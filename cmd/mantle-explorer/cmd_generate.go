package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/render"
)

func newGenerateCmd() *cobra.Command {
	var (
		outputPath string
		root       string
		depth      int
	)

	cmd := &cobra.Command{
		Use:   "generate <csv>",
		Short: "Write the interactive network explorer page",
		Long: `Read the items export and write a self-contained HTML page. The page
lists every non-quote item and draws the network around the selected item
down to the chosen depth. Use - as <csv> to read standard input and -o - to
write the page to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("depth") {
				if depth < 1 || depth > graph.MaxDepth {
					return fmt.Errorf("%w: %d (want 1..%d)", models.ErrInvalidDepth, depth, graph.MaxDepth)
				}
				cfg.DefaultDepth = depth
			}

			ds, err := explorer.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data, err := explorer.Page(ds, root)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render.Render(&buf, data); err != nil {
				return err
			}

			if outputPath == "" {
				outputPath = cfg.Output
			}

			if outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil { //nolint:gosec // the page is meant to be shared
				return fmt.Errorf("writing page: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s: %d items, %d edges, depth 1-%d (default %d)\n",
				outputPath, len(data.Options), len(data.Edges), data.MaxDepth, data.DefaultDepth)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: config output, use - for stdout)")
	cmd.Flags().StringVar(&root, "root", "", "Item id preselected when the page opens")
	cmd.Flags().IntVar(&depth, "depth", 0, "Default depth of the page's depth picker (default from config)")

	return cmd
}

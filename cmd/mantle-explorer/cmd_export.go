package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <csv>",
		Short: "Export the item graph to a JSON file",
		Long: `Export every non-quote item and every relationship of the sheet to a
portable JSON document, together with the build statistics and a run id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := explorer.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data := explorer.Export(ds)

			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshalling export: %w", err)
			}

			if outputPath == "" {
				outputPath = fmt.Sprintf("mantle-export-%s.json",
					time.Now().UTC().Format("20060102T150405Z"))
			}

			if outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(append(out, '\n'))
				return err
			}

			if err := os.WriteFile(outputPath, out, 0o600); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d items, %d edges to %s\n",
				data.Stats.ItemCount, data.Stats.EdgeCount, outputPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: mantle-export-<timestamp>.json, use - for stdout)")

	return cmd
}

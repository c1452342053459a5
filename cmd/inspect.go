/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/usecase/backup"
)

const inspectInputKey = "inspect.input"

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a snapshot backup or the configured seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if input := viper.GetString(inspectInputKey); input != "" {
			snap, meta, err := seed.NewFileProvider(input).LoadWithMeta(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "file:        %s\n", input)
			fmt.Fprintf(out, "version:     %d\n", meta.Version)
			fmt.Fprintf(out, "exported at: %s\n", meta.ExportedAt.Format(time.RFC3339))
			if meta.SchemaHash != backup.NewService().SchemaHash() {
				fmt.Fprintln(out, "schema:      differs from this build")
			}
			renderCounts(out, backup.Counts(snap))
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		provider, err := seed.NewProvider(cfg)
		if err != nil {
			return err
		}
		snap, err := provider.Load(ctx)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		fmt.Fprintf(out, "seed source: %s\n", cfg.Seed.Source)
		renderCounts(out, backup.Counts(snap))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("input", "i", "", "backup file to inspect instead of the configured seed")
	bindFlagToViper(inspectInputKey, inspectCmd.Flags().Lookup("input"))
}

func renderCounts(out io.Writer, counts map[string]int) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Records"})
	total := 0
	for _, kind := range backup.Kinds() {
		table.Append([]string{kind, strconv.Itoa(counts[kind])})
		total += counts[kind]
	}
	table.SetFooter([]string{"total", strconv.Itoa(total)})
	table.Render()
}

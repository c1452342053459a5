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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/usecase/backup"
)

const (
	exportOutputKey = "export.output"
	exportGzipKey   = "export.gzip"
	exportKindsKey  = "export.kinds"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the seed snapshot as a JSONL backup",
	Long: `Export loads the configured seed (embedded fixtures or a previous export)
and writes it as JSON lines. The output can be served again with --seed=file.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		outputPath := viper.GetString(exportOutputKey)
		gzipEnabled := viper.GetBool(exportGzipKey)
		kinds, err := kindsFromConfig(exportKindsKey)
		if err != nil {
			return err
		}

		if outputPath == "" {
			outputPath = defaultExportFilename(gzipEnabled)
		}
		if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
			gzipEnabled = true
		}

		provider, err := seed.NewProvider(cfg)
		if err != nil {
			return err
		}
		snap, err := provider.Load(ctx)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}

		var (
			writer   = cmd.OutOrStdout()
			closeFns []func() error
		)

		if outputPath != "-" {
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			file, openErr := os.Create(outputPath)
			if openErr != nil {
				return fmt.Errorf("create backup file: %w", openErr)
			}
			writer = file
			closeFns = append(closeFns, file.Close)
		}

		if gzipEnabled {
			gz := gzip.NewWriter(writer)
			writer = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}

		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		progress := newCLIProgress(cmd.ErrOrStderr())
		exportOpts := []backup.ExportOption{backup.WithProgressReporter(progress)}
		if len(kinds) > 0 {
			exportOpts = append(exportOpts, backup.WithKinds(kinds))
		}

		if err := backup.NewService().Export(ctx, writer, snap, exportOpts...); err != nil {
			return fmt.Errorf("export snapshot: %w", err)
		}

		if outputPath == "-" {
			cmd.PrintErrln("export finished: written to stdout")
		} else {
			cmd.PrintErrf("export finished: %s\n", outputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "backup file path, - writes to stdout")
	exportCmd.Flags().Bool("gzip", false, "gzip the output")
	exportCmd.Flags().StringSlice("kinds", nil, "only export these record kinds ("+strings.Join(backup.Kinds(), ", ")+")")

	bindFlagToViper(exportOutputKey, exportCmd.Flags().Lookup("output"))
	bindFlagToViper(exportGzipKey, exportCmd.Flags().Lookup("gzip"))
	bindFlagToViper(exportKindsKey, exportCmd.Flags().Lookup("kinds"))
}

func defaultExportFilename(gzipEnabled bool) string {
	ts := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("lexiroad-snapshot-%s.jsonl", ts)
	if gzipEnabled {
		filename += ".gz"
	}
	return filename
}

type cliProgress struct {
	out         io.Writer
	totals      map[string]int
	counts      map[string]int
	lastPrinted map[string]int
	steps       map[string]int
}

func newCLIProgress(out io.Writer) *cliProgress {
	return &cliProgress{
		out:         out,
		totals:      make(map[string]int),
		counts:      make(map[string]int),
		lastPrinted: make(map[string]int),
		steps:       make(map[string]int),
	}
}

func (p *cliProgress) StartTable(kind string, total int) {
	if total < 0 {
		total = 0
	}
	p.totals[kind] = total
	p.counts[kind] = 0
	p.lastPrinted[kind] = 0
	p.steps[kind] = progressStep(total)
	fmt.Fprintf(p.out, "exporting %s (%d records)\n", kind, total)
}

func (p *cliProgress) Increment(kind string, delta int) {
	if delta <= 0 {
		return
	}
	current := p.counts[kind] + delta
	p.counts[kind] = current
	total := p.totals[kind]
	step := p.steps[kind]
	if step <= 0 {
		step = 1
	}
	last := p.lastPrinted[kind]
	if current == total || current-last >= step {
		fmt.Fprintf(p.out, "  %s: %d/%d\n", kind, current, total)
		p.lastPrinted[kind] = current
	}
}

func (p *cliProgress) FinishTable(kind string) {
	fmt.Fprintf(p.out, "exported %s: %d records\n", kind, p.counts[kind])
	delete(p.counts, kind)
	delete(p.totals, kind)
	delete(p.lastPrinted, kind)
	delete(p.steps, kind)
}

func progressStep(total int) int {
	return min(max(total/20, 1), 1000)
}

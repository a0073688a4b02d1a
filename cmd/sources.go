package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Krijovnick/ai-news/internal/model"
	"github.com/Krijovnick/ai-news/internal/source"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// sourcesCmd fetches one item from every enabled source to check connectivity.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check every enabled source by fetching a single item",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx := context.Background()
		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			slog.Warn("redis unavailable, channel cache disabled", "error", err)
		}
		defer closeStore()

		sources, err := buildSources(ctx, cfg, store, 1)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return fmt.Errorf("no sources enabled")
		}
		results := source.Collect(ctx, sources, cfg.FetchTimeout(), slog.Default())
		if err := renderSourceTable(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		for _, r := range results {
			if !r.OK() {
				return fmt.Errorf("%s failed", r.Source)
			}
		}
		return nil
	},
}

func renderSourceTable(w io.Writer, results []model.SourceResult) error {
	table := newTable(w)
	table.Header("Source", "Status", "Items", "Sample")
	for _, r := range results {
		status := color.GreenString("✅ ok")
		sample := ""
		if !r.OK() {
			status = color.RedString("❌ failed")
			sample = r.Err.Error()
		} else if len(r.Items) > 0 {
			sample = r.Items[0].Title
		}
		if err := table.Append([]string{r.Source, status, strconv.Itoa(len(r.Items)), sample}); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

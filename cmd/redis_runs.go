package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/redisclient"
	"github.com/Krijovnick/ai-news/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var runsLimit int

// runsCmd lists recent runs from the run log.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent aggregation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		runs, err := storage.NewRedisStore(rdb).RecentRuns(ctx, runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
			return nil
		}
		return renderRuns(cmd.OutOrStdout(), runs)
	},
}

func renderRuns(w io.Writer, runs []storage.RunRecord) error {
	table := newTable(w)
	table.Header("Started", "Status", "Collected", "Unique", "Delivered", "Took", "Sources")
	for _, r := range runs {
		status := r.Status
		switch status {
		case "ok":
			status = color.GreenString(status)
		case "failed":
			status = color.RedString(status)
		default:
			status = color.YellowString(status)
		}
		row := []string{
			r.StartedAt.Format(time.RFC3339),
			status,
			strconv.Itoa(r.Collected),
			strconv.Itoa(r.Unique),
			strconv.Itoa(r.Delivered),
			r.Duration.Round(time.Second).String(),
			strings.Join(r.Sources, ", "),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "number of runs to show")
	redisCmd.AddCommand(runsCmd)
}

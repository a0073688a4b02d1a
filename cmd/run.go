package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Krijovnick/ai-news/worker"

	"github.com/spf13/cobra"
)

var runDryRun bool

// runCmd performs a single aggregation run.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Collect, rank and deliver one digest now",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		var sender worker.Deliverer
		if runDryRun {
			sender = &stdoutSender{w: cmd.OutOrStdout()}
		}
		job, err := newDigestJob(ctx, cfg, store, sender)
		if err != nil {
			return err
		}
		rec, err := job.RunOnce(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %s, %d collected, %d delivered\n", rec.ID, rec.Status, rec.Collected, rec.Delivered)
		return nil
	},
}

// stdoutSender prints messages instead of posting them.
type stdoutSender struct {
	w io.Writer
}

func (s *stdoutSender) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintf(s.w, "%s\n\n", text)
	return err
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print messages to stdout instead of sending them")
	rootCmd.AddCommand(runCmd)
}

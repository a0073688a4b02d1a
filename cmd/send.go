package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Krijovnick/ai-news/internal/digest"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a test message to the configured Telegram chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		f := digest.NewFormatter(cfg.Digest.Language)
		sender, err := newSender(cfg, f)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := sender.Send(ctx, f.TestMessage()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Test message delivered to %s\n", cfg.Telegram.ChatID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

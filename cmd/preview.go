package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Krijovnick/ai-news/internal/digest"
	"github.com/Krijovnick/ai-news/internal/model"
	"github.com/Krijovnick/ai-news/internal/pipeline"

	"github.com/spf13/cobra"
)

var previewMax int

// previewCmd ranks a JSON array of items and prints the digest without
// contacting any source or Telegram.
var previewCmd = &cobra.Command{
	Use:   "preview <items.json|->",
	Short: "Render a digest from a JSON file of news items",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires <items.json> or - for stdin")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		proc, err := newProcessor(cfg)
		if err != nil {
			return err
		}
		text, err := previewDigest(r, proc, digest.NewFormatter(cfg.Digest.Language), previewMax)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func previewDigest(r io.Reader, proc *pipeline.Processor, f *digest.Formatter, maxItems int) (string, error) {
	var items []model.NewsItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return "", fmt.Errorf("decode items: %w", err)
	}
	ranked := proc.Rank(items)
	if maxItems <= 0 {
		maxItems = len(ranked)
	}
	return f.Format(ranked, maxItems), nil
}

func init() {
	previewCmd.Flags().IntVar(&previewMax, "max", 0, "maximum items to show (0 = all)")
	rootCmd.AddCommand(previewCmd)
}

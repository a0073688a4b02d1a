package main

import (
	"os"

	"github.com/Krijovnick/ai-news/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/archup/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed docs
var docsFS embed.FS

// initTopics wires the embedded documentation into the help system.
// A broken topic setup degrades help output but must not take the
// provisioner down with it.
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		// Always use Glamour renderer for markdown files
		Renderer: topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}

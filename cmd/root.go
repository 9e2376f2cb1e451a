package cmd

import (
	"context"
	"os"
	"os/signal"

	"snapclip/pkg/logging"
	"snapclip/pkg/version"

	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it. The context is cancelled on
// interrupt so a long directory walk stops early.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the snapclip command: the collector itself, with the
// HTML splitter and version commands attached.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := newCollectCmd()
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return logging.Setup(debug, version.Name, version.Version)
	}

	root.AddCommand(newSplitCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())
	return root
}

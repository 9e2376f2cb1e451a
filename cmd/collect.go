package cmd

import (
	"fmt"
	"os"

	"snapclip/pkg/clipboard"
	"snapclip/pkg/collect"
	"snapclip/pkg/config"
	"snapclip/pkg/ignore"
	"snapclip/pkg/logging"
	"snapclip/pkg/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type collectOptions struct {
	stdout     bool
	tree       bool
	configPath string
	ignorePath string
}

// newCollectCmd builds the root collector command.
func newCollectCmd() *cobra.Command {
	opts := &collectOptions{}

	cmd := &cobra.Command{
		Use:   "snapclip <base_directory> <targets>...",
		Short: "Copy the code files matching names or paths to the clipboard",
		Long: `Reads code files using smart searching (partial names or full paths) and
copies their combined content to the clipboard.

Each target is either a path relative to the base directory or a keyword
matched case-insensitively against file and folder names. Matching folders
contribute every code file below them.`,
		Example: `  snapclip ./my_app login_screen     files/folders containing 'login_screen'
  snapclip ./my_app lib/auth         the exact folder lib/auth
  snapclip ./my_app auth api --tree  several keywords, with a file tree`,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the combined content instead of copying it to the clipboard")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Prepend a tree of the included files")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	cmd.Flags().StringVar(&opts.ignorePath, "ignore-file", "", "Global ignore file (default $"+ignore.EnvGlobal+")")
	return cmd
}

func runCollect(cmd *cobra.Command, opts *collectOptions, base string, targets []string) error {
	logger := logging.Logger

	var writer clipboard.Writer
	var out *ui.Printer
	if opts.stdout {
		// Progress goes to stderr so stdout carries only the content.
		out = ui.New(cmd.ErrOrStderr())
		writer = clipboard.Stream(cmd.OutOrStdout())
	} else {
		if err := clipboard.CheckAvailable(); err != nil {
			return fmt.Errorf("%w; on Linux install xclip, xsel or wl-clipboard, or use --stdout", err)
		}
		out = ui.New(cmd.OutOrStdout())
		out.Success("Clipboard is available.")
		writer = clipboard.System()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	switch {
	case opts.ignorePath != "":
		cfg.IgnoreFile = opts.ignorePath
	case cfg.IgnoreFile == "":
		cfg.IgnoreFile = os.Getenv(ignore.EnvGlobal)
	}

	result, err := collect.New(cfg, logger, out).Collect(cmd.Context(), base, targets)
	if err != nil {
		logger.Warn("Collection failed", zap.String("base", base), zap.Error(err))
		out.Error("\nOperation failed: %v", err)
		return nil
	}

	content := collect.Render(result, cfg.Separator, opts.tree)
	if content == "" {
		out.Warning("\nNo readable files were found for the specified targets.")
		return nil
	}

	if err := writer.WriteAll(content); err != nil {
		logger.Warn("Copy failed", zap.Error(err))
		out.Error("\nFinal copy FAILED: %v", err)
		out.Warning("The content was generated, but the clipboard operation failed.")
		return nil
	}

	if opts.stdout {
		out.Success("\nContent of %d file(s) has been written to stdout.", len(result.Files))
	} else {
		out.Success("\nSuccess! Content of %d file(s) has been copied to your clipboard.", len(result.Files))
	}
	return nil
}

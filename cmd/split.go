package cmd

import (
	"snapclip/pkg/htmlsplit"
	"snapclip/pkg/logging"
	"snapclip/pkg/ui"

	"github.com/spf13/cobra"
)

type splitOptions struct {
	input string
	dir   string
	names htmlsplit.Names
}

// newSplitCmd builds the command that splits a page into style, script and
// markup files.
func newSplitCmd() *cobra.Command {
	opts := &splitOptions{names: htmlsplit.DefaultNames()}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split an HTML page into CSS, JavaScript and HTML files",
		Long: `Moves the first <style> block and the first <script type='text/javascript'>
block of a page into their own files and writes a page that links them.
Existing output files are overwritten.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", htmlsplit.DefaultInput, "HTML page to split")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory for the output files")
	cmd.Flags().StringVar(&opts.names.Style, "style", opts.names.Style, "Name of the stylesheet file")
	cmd.Flags().StringVar(&opts.names.Script, "script", opts.names.Script, "Name of the script file")
	cmd.Flags().StringVar(&opts.names.Markup, "html", opts.names.Markup, "Name of the rewritten page")
	return cmd
}

func runSplit(cmd *cobra.Command, opts *splitOptions) error {
	out := ui.New(cmd.OutOrStdout())

	doc, err := htmlsplit.ReadDocument(opts.input)
	if err != nil {
		return err
	}

	sections := htmlsplit.Split(doc, opts.names)
	written, err := htmlsplit.WriteFiles(opts.dir, sections, opts.names, logging.Logger)
	if err != nil {
		return err
	}

	sizes := []int{len([]rune(sections.Style)), len([]rune(sections.Script)), len([]rune(sections.Markup))}
	labels := []string{"CSS", "JavaScript", "HTML"}
	for i, path := range written {
		out.Success("%s file created: %s (%d characters)", labels[i], path, sizes[i])
	}
	if sections.Style == "" {
		out.Warning("No <style> block found; %s is empty.", opts.names.Style)
	}
	if sections.Script == "" {
		out.Warning("No inline script block found; %s is empty.", opts.names.Script)
	}
	return nil
}

package cmd

import (
	"snapclip/pkg/htmlsplit"
	"snapclip/pkg/ui"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "Report the inline sections and resources of an HTML page",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := htmlsplit.ReadDocument(input)
			if err != nil {
				return err
			}
			printReport(ui.New(cmd.OutOrStdout()), htmlsplit.Inspect(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", htmlsplit.DefaultInput, "HTML page to inspect")
	return cmd
}

func printReport(out *ui.Printer, r htmlsplit.Report) {
	out.Header("=== HTML STRUCTURE ANALYSIS ===")
	out.Info("HTML File Length: %d", r.Length)
	out.Info("CSS Content Length: %d characters", r.StyleLength)
	out.Info("JavaScript Content Length: %d characters", r.ScriptLength)
	out.Info("Body Content Length: %d characters", r.BodyLength)

	lists := []struct {
		title string
		items []string
	}{
		{"External Scripts", r.ExternalScripts},
		{"Images Referenced", r.Images},
		{"Audio Files Referenced", r.Audio},
	}
	for _, l := range lists {
		out.Header("\n%s: %d", l.title, len(l.items))
		for _, item := range l.items {
			out.Path("- %s", item)
		}
	}
}

package cli

import (
	"github.com/dshills/critic/internal/feedback"
	"github.com/dshills/critic/internal/output"
	"github.com/dshills/critic/internal/review"
	"github.com/spf13/cobra"
)

var (
	flagRenderFormat string
	flagRenderOut    string
)

// renderResult wraps review text that did not come from a provider call.
// The empty Provider keeps writers from printing run metadata.
func renderResult(in input) *review.Result {
	return &review.Result{
		Tool:     review.Tool,
		Version:  review.Version,
		Filename: in.name,
		Feedback: in.content,
		Document: feedback.Parse(in.content),
	}
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Format existing review text without calling a provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := readInputs(cmd.InOrStdin(), args)
		if err != nil {
			fail(err)
			return nil
		}
		if err := output.WriteResult(renderResult(inputs[0]), flagRenderFormat, flagRenderOut); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderFormat, "format", "text", "Output format (text, json, markdown, html)")
	renderCmd.Flags().StringVar(&flagRenderOut, "out", "", "Output file path (default: stdout)")
}

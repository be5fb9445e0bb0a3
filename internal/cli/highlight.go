package cli

import (
	"github.com/dshills/critic/internal/highlight"
	"github.com/dshills/critic/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagHighlightLang   string
	flagHighlightFormat string
	flagHighlightOut    string
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Tokenize and colour code",
	Long: "Split code into highlight tokens and render them as coloured text, HTML " +
		"or JSON. The language comes from --lang, the file name, or detection.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := readInputs(cmd.InOrStdin(), args)
		if err != nil {
			fail(err)
			return nil
		}
		in := inputs[0]
		language, tokens := highlight.TokenizeAuto(in.content, declaredLanguage(flagHighlightLang, in))
		if err := output.WriteTokens(language, tokens, flagHighlightFormat, flagHighlightOut); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	highlightCmd.Flags().StringVar(&flagHighlightLang, "lang", "", "Language of the code (default: detect)")
	highlightCmd.Flags().StringVar(&flagHighlightFormat, "format", "text", "Output format (text, json, html)")
	highlightCmd.Flags().StringVar(&flagHighlightOut, "out", "", "Output file path (default: stdout)")
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/dshills/critic/internal/langdetect"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	flagDetectJSON bool
	flagDetectJobs int
)

// detection is the classifier outcome for one input.
type detection struct {
	File string `json:"file"`
	langdetect.Result
}

// detectAll classifies inputs concurrently, keeping input order.
func detectAll(ctx context.Context, inputs []input, jobs int) ([]detection, error) {
	out := make([]detection, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = detection{File: in.displayName(), Result: langdetect.Detect(in.content)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeDetections(w io.Writer, ds []detection, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	}
	for _, d := range ds {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", d.File, d.Label, d.Reason, d.Score); err != nil {
			return err
		}
	}
	return nil
}

var detectCmd = &cobra.Command{
	Use:   "detect [file...]",
	Short: "Guess the language of files, or code from stdin",
	Long: "Classify code with the heuristic language detector and print the label, " +
		"the rule that chose it and the winning score. File names are ignored.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := readInputs(cmd.InOrStdin(), args)
		if err != nil {
			fail(err)
			return nil
		}
		ds, err := detectAll(cmd.Context(), inputs, flagDetectJobs)
		if err != nil {
			fail(err)
			return nil
		}
		if err := writeDetections(cmd.OutOrStdout(), ds, flagDetectJSON); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().BoolVar(&flagDetectJSON, "json", false, "Print results as JSON, including the per-language scores")
	detectCmd.Flags().IntVar(&flagDetectJobs, "jobs", 0, "Number of files classified in parallel (default: GOMAXPROCS)")
}

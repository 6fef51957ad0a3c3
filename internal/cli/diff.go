package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gbkit-core/genbank"
	"gbkit-core/location"

	"gbkit/internal/diffutil"
)

// diffCmd compares the same feature's sequence across two records.
func (a *app) diffCmd() *cobra.Command {
	var (
		input      string
		against    string
		feature    string
		occurrence int
		ctxLines   int
	)
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Diff one feature's sequence between two records",
		Example: `  gbkit diff -i old.gb --against new.gb --feature CDS
  gbkit diff -i old.gb --against new.gb --feature gene --context 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pol, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			extract := func(path string) (string, string, error) {
				rec, err := genbank.ParseFile(path)
				if err != nil {
					return "", "", err
				}
				loc, err := rec.Features.Location(feature, occurrence)
				if err != nil {
					return "", "", fmt.Errorf("%s: %w", path, err)
				}
				seq, err := location.ResolveWith(loc, rec.Sequence, pol)
				if err != nil {
					return "", "", fmt.Errorf("%s: %w", path, err)
				}
				return seq, rec.Metadata.Accession, nil
			}

			aSeq, aAcc, err := extract(input)
			if err != nil {
				return err
			}
			bSeq, bAcc, err := extract(against)
			if err != nil {
				return err
			}

			diff, err := diffutil.Unified(
				fmt.Sprintf("%s:%s", aAcc, feature),
				fmt.Sprintf("%s:%s", bAcc, feature),
				aSeq, bSeq, ctxLines,
			)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "identical")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "first GenBank flat file (required)")
	cmd.Flags().StringVar(&against, "against", "", "second GenBank flat file (required)")
	cmd.Flags().StringVar(&feature, "feature", "", "feature key to compare (required)")
	cmd.Flags().IntVar(&occurrence, "occurrence", 0, "0-based index among features with the same key")
	cmd.Flags().IntVar(&ctxLines, "context", 3, "context lines around each hunk")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("against")
	cmd.MarkFlagRequired("feature")
	return cmd
}

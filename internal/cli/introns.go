package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gbkit-core/genbank"
	"gbkit-core/location"
)

// intronsCmd prints the gaps between a joined feature's exons.
func (a *app) intronsCmd() *cobra.Command {
	var (
		input      string
		feature    string
		occurrence int
	)
	cmd := &cobra.Command{
		Use:   "introns",
		Short: "List the regions a joined feature skips",
		Example: `  gbkit introns -i plasmid.gb --feature CDS
  gbkit introns -i plasmid.gb --feature mRNA --occurrence 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := genbank.ParseFile(input)
			if err != nil {
				return err
			}
			loc, err := rec.Features.Location(feature, occurrence)
			if err != nil {
				return err
			}
			// A reverse-strand CDS is still exons on the template; the
			// complement wrapper does not change which bases are skipped.
			if c, ok := loc.(location.Complement); ok {
				loc = c.Inner
			}
			join, ok := loc.(location.Join)
			if !ok {
				return fmt.Errorf("feature %q location %s is not a join", feature, loc)
			}
			introns, err := join.Introns(uint(rec.Sequence.Len()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range introns {
				fmt.Fprintln(out, r.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "GenBank flat file (required)")
	cmd.Flags().StringVar(&feature, "feature", "", "feature key (required)")
	cmd.Flags().IntVar(&occurrence, "occurrence", 0, "0-based index among features with the same key")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("feature")
	return cmd
}

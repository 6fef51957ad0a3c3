package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gbkit-core/genbank"
	"gbkit-core/location"

	"gbkit/internal/writers"
)

// extractCmd resolves one location against a record's origin sequence,
// addressed either by feature key or by a literal location expression.
func (a *app) extractCmd() *cobra.Command {
	var (
		input      string
		feature    string
		occurrence int
		locExpr    string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the subsequence a location addresses",
		Example: `  gbkit extract -i plasmid.gb --feature CDS
  gbkit extract -i plasmid.gb --feature gene --occurrence 1 --format fasta
  gbkit extract -i plasmid.gb --location 'complement(join(10..21,30..45))'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (feature == "") == (locExpr == "") {
				return usageErrorf("exactly one of --feature or --location is required")
			}
			rec, err := genbank.ParseFile(input)
			if err != nil {
				return err
			}

			var loc location.Location
			var name string
			if feature != "" {
				loc, err = rec.Features.Location(feature, occurrence)
				if err != nil {
					return err
				}
				name = fmt.Sprintf("%s|%s", rec.Metadata.Accession, feature)
				if occurrence > 0 {
					name = fmt.Sprintf("%s.%d", name, occurrence)
				}
			} else {
				loc, err = location.Parse(locExpr)
				if err != nil {
					return err
				}
				name = rec.Metadata.Accession
			}

			pol, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			seq, err := location.ResolveWith(loc, rec.Sequence, pol)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "raw":
				_, err = fmt.Fprintln(out, seq)
			case "fasta":
				err = writers.WriteFASTA(out, name, loc.String(), seq)
			default:
				return usageErrorf("unknown format %q (have [fasta raw])", format)
			}
			if writers.IsBrokenPipe(err) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "GenBank flat file (required)")
	cmd.Flags().StringVar(&feature, "feature", "", "feature key to extract (e.g. CDS)")
	cmd.Flags().IntVar(&occurrence, "occurrence", 0, "0-based index among features with the same key")
	cmd.Flags().StringVar(&locExpr, "location", "", "literal location expression to resolve")
	cmd.Flags().StringVar(&format, "format", "raw", "output format: raw or fasta")
	cmd.MarkFlagRequired("input")
	return cmd
}

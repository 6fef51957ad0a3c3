package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gbkit-core/genbank"
)

// metaCmd dumps the header section of a record.
func (a *app) metaCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Show a record's header metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := genbank.ParseFile(input)
			if err != nil {
				return err
			}
			m := rec.Metadata

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "locus\t%s\n", m.LocusName)
			fmt.Fprintf(tw, "length\t%d bp\n", m.Length)
			fmt.Fprintf(tw, "molecule\t%s\n", m.MoleculeType)
			if m.Topology != "" {
				fmt.Fprintf(tw, "topology\t%s\n", m.Topology)
			}
			fmt.Fprintf(tw, "division\t%s\n", m.Division)
			fmt.Fprintf(tw, "updated\t%s\n", m.Updated)
			fmt.Fprintf(tw, "definition\t%s\n", m.Definition)
			fmt.Fprintf(tw, "accession\t%s\n", m.Accession)
			fmt.Fprintf(tw, "version\t%s\n", m.Version)
			fmt.Fprintf(tw, "keywords\t%s\n", m.Keywords)
			fmt.Fprintf(tw, "source\t%s\n", m.Source)
			fmt.Fprintf(tw, "organism\t%s\n", m.Organism)
			fmt.Fprintf(tw, "references\t%d\n", len(m.References))
			fmt.Fprintf(tw, "features\t%d\n", rec.Features.Len())
			fmt.Fprintf(tw, "sequence\t%d bp\n", rec.Sequence.Len())
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "GenBank flat file (required)")
	cmd.MarkFlagRequired("input")
	return cmd
}

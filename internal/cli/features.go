package cli

import (
	"github.com/spf13/cobra"

	"gbkit-core/genbank"

	"gbkit/internal/writers"
)

// featuresCmd lists a record's feature table.
func (a *app) featuresCmd() *cobra.Command {
	var (
		input  string
		format string
		key    string
	)
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the features of a record",
		Example: `  gbkit features -i plasmid.gb
  gbkit features -i plasmid.gb --key CDS --format pretty
  gbkit features -i plasmid.gb --format jsonl | jq .location`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := genbank.ParseFile(input)
			if err != nil {
				return err
			}
			rows := writers.FromRecord(rec)
			if key != "" {
				kept := rows[:0]
				for _, r := range rows {
					if r.Key == key {
						kept = append(kept, r)
					}
				}
				rows = kept
			}
			if format == "" {
				format = a.cfg.Format
			}
			if err := writers.WriteFeatures(format, cmd.OutOrStdout(), rows); err != nil {
				if writers.IsBrokenPipe(err) {
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "GenBank flat file (required)")
	cmd.Flags().StringVar(&format, "format", "", "output format: tsv, jsonl or pretty")
	cmd.Flags().StringVar(&key, "key", "", "only show features with this key")
	cmd.MarkFlagRequired("input")
	return cmd
}

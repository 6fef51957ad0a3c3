package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gbkit-core/dna"
	"gbkit-core/genbank"
	"gbkit-core/location"

	"gbkit/internal/store"
	"gbkit/internal/writers"
)

// indexCmd ingests records into the SQLite feature index, or lists what
// the index already holds.
func (a *app) indexCmd() *cobra.Command {
	var (
		database string
		list     string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "index [flags] [file ...]",
		Short: "Build or query a SQLite feature index",
		Example: `  gbkit index -d features.db plasmid.gb vector.gb
  gbkit index -d features.db --list SYNPLAS
  gbkit index -d features.db --list all --format jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if database == "" {
				database = a.cfg.Database
			}
			if list == "" && len(args) == 0 {
				return usageErrorf("nothing to do: give files to index or --list")
			}
			st, err := store.Open(database)
			if err != nil {
				return err
			}
			defer st.Close()

			if list != "" {
				accession := list
				if accession == "all" {
					accession = ""
				}
				rows, err := st.Features(accession)
				if err != nil {
					return err
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
			}

			pol, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := indexFile(st, path, pol); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "indexed %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&database, "database", "d", "", "index database path")
	cmd.Flags().StringVar(&list, "list", "", "list indexed features for an accession ('all' for every record)")
	cmd.Flags().StringVar(&format, "format", "", "listing format: tsv, jsonl or pretty")
	return cmd
}

// indexFile parses one record and stores every feature row together
// with its resolved subsequence. Features whose location cannot be
// resolved (remote references, unknown bounds) are stored without a
// sequence rather than failing the whole file.
func indexFile(st *store.Store, path string, pol dna.Policy) error {
	rec, err := genbank.ParseFile(path)
	if err != nil {
		return err
	}
	if err := st.AddRecord(rec.Metadata.Accession, rec.Metadata.LocusName, rec.Sequence.Len()); err != nil {
		return err
	}
	for i, row := range writers.FromRecord(rec) {
		var seq string
		if loc, err := rec.Features.All()[i].Location(); err == nil {
			seq, _ = location.ResolveWith(loc, rec.Sequence, pol)
		}
		if err := st.AddFeature(row, seq); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nucastro/gofission/decays"
	"github.com/nucastro/gofission/netfile"
)

var (
	betaSource string
	betaMaxZ   int
)

var betaCmd = &cobra.Command{
	Use:   "beta TABLE",
	Short: "Write beta-decay entries from a half-life table",
	Long: `Reads rows of "Z N half-life[s]" and writes one beta-minus
single_rate entry per row.

Example:
  gofission beta all_beta_decay_half_lives.txt -o all_beta_decay_reactions.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runBeta,
}

func init() {
	betaCmd.Flags().StringVar(&betaSource, "source", "Nuclear properties for astrophysical and radioactive-ion-beam applications (II)", "source line of the entries")
	betaCmd.Flags().IntVar(&betaMaxZ, "max-z", decays.DefaultMaxZ, "heaviest parent to include")
}

func runBeta(cmd *cobra.Command, args []string) (err error) {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	rows, err := decays.ReadTable(f)
	f.Close()
	if err != nil {
		return err
	}
	entries, err := decays.BetaEntries(rows, betaSource, betaMaxZ)
	if err != nil {
		return err
	}
	logger.Info("beta-decay entries", zap.Int("rows", len(rows)), zap.Int("entries", len(entries)))
	w, closer, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)
	return netfile.Write(w, entries...)
}

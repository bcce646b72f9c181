package cli

import (
	"github.com/spf13/cobra"

	"github.com/reefscope/divetrace/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored evaluation runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.RecentRuns(runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("no stored runs")
		return nil
	}

	for _, r := range runs {
		cmd.Printf("%s  %s  gf=%.2f  %d samples  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.GradientFactor, r.SampleCount, r.Source)
	}
	return nil
}

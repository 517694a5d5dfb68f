package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hamedhamzeh/annotex/internal/history"
)

var (
	flagHistoryLimit int
	flagHistoryPath  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past explore runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&flagHistoryPath, "db", "", "History database path (default: per-user data dir)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := flagHistoryPath
	if path == "" {
		path = history.DefaultPath()
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(cmd.Context(), flagHistoryLimit)
	if err != nil {
		return err
	}

	if flagFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tARCHIVE\tFORMAT\tIMAGES\tANNOTATIONS\tWORKSPACE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Archive, r.Format, r.Images, r.Annotations, r.Workspace)
	}
	return w.Flush()
}

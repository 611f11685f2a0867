package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/halvard/tfengine"
)

var (
	flagStatus   string
	flagParallel bool
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <query-text>",
		Short: "Run a ranked find-top query against the ingested documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}
			status, err := tfengine.ParseStatus(flagStatus)
			if err != nil {
				return err
			}

			var results []tfengine.Result
			if flagParallel {
				results, err = state.engine.FindTopParallel(args[0], status)
			} else {
				results, err = state.queue.AddFindRequest(args[0], status)
			}
			if err != nil {
				return err
			}

			for _, r := range results {
				fmt.Printf("%d\trelevance=%.6f\trating=%d\n", r.ID, r.Relevance, r.Rating)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagStatus, "status", "ACTUAL", "document status to search within")
	cmd.Flags().BoolVar(&flagParallel, "parallel", false, "use the parallel query path")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "match <query-text>",
		Short: "Report which of a document's terms match a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}
			terms, status, err := state.engine.MatchDocument(args[0], id)
			if err != nil {
				return err
			}
			fmt.Printf("status=%s terms=%v\n", status, terms)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "document id to match against")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	var id int
	var parallel bool
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a document from the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}
			if parallel {
				state.engine.RemoveDocumentParallel(id)
			} else {
				state.engine.RemoveDocument(id)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "document id to remove")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel removal path")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDedupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedup",
		Short: "Remove documents that share an identical term set with an earlier one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}
			removed := state.engine.RemoveDuplicates(func(id int) {
				fmt.Println("removing duplicate document id " + strconv.Itoa(id))
			})
			fmt.Printf("removed %d duplicate document(s)\n", len(removed))
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print engine and request-queue statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}
			fmt.Printf("documents=%d empty_requests=%d\n", state.engine.DocumentCount(), state.queue.EmptyRequestCount())
			return nil
		},
	}
}

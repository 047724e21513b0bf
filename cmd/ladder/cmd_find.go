package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/ladder"
)

type findOutput struct {
	Path     []string `json:"path"`
	Steps    int      `json:"steps"`
	Found    bool     `json:"found"`
	Expanded int      `json:"expanded"`
	Visited  int      `json:"visited"`
}

func newFindCmd() *cobra.Command {
	var anyLen, showTree bool
	cmd := &cobra.Command{
		Use:   "find <start> <target>",
		Short: "Print the shortest ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, provider, err := loadProvider()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			start, target := strings.ToLower(args[0]), strings.ToLower(args[1])
			opts := append(metrics.Hooks(),
				ladder.WithContext(ctx),
				ladder.WithMaxDepth(cfg.MaxDepth),
			)
			if anyLen {
				opts = append(opts, ladder.WithAnyLength())
			}

			res, err := ladder.Search(provider, start, target, opts...)
			metrics.ObserveSearch(res, err)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"expanded": res.Expanded,
				"visited":  res.Visited,
			}).Debug("search finished")

			if showTree {
				fmt.Fprint(cmd.ErrOrStderr(), res.Tree.String())
			}
			if flagFmt == "json" {
				return printJSON(cmd.OutOrStdout(), findOutput{
					Path:     res.Path,
					Steps:    res.Len(),
					Found:    res.Found(),
					Expanded: res.Expanded,
					Visited:  res.Visited,
				})
			}
			if !res.Found() {
				fmt.Fprintf(cmd.OutOrStdout(), "no ladder from %q to %q\n", start, target)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Path, " -> "))
			return nil
		},
	}
	cmd.Flags().Int("max-depth", 0, "Maximum ladder steps, 0 = no limit (env: LADDER_MAX_DEPTH)")
	cmd.Flags().BoolVar(&anyLen, "any-length", false, "Allow adding or removing a letter per step")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the search tree to stderr")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNeighborsCmd() *cobra.Command {
	var anyLen bool
	cmd := &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one edit away",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, provider, err := loadProvider()
			if err != nil {
				return err
			}
			word := strings.ToLower(args[0])
			nbrs, err := provider.DistanceOne(word, !anyLen)
			if err != nil {
				return err
			}
			if flagFmt == "json" {
				if nbrs == nil {
					nbrs = []string{}
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"word": word, "neighbors": nbrs})
			}
			for _, n := range nbrs {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&anyLen, "any-length", false, "Include insertions and deletions")
	return cmd
}

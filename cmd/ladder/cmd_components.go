package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/wordgraph"
)

type componentsOutput struct {
	Words      int        `json:"words"`
	Edges      int        `json:"edges"`
	Components [][]string `json:"components"`
}

func newComponentsCmd() *cobra.Command {
	var anyLen bool
	var minSize int
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Group dictionary words that are connected by ladders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, provider, err := loadProvider()
			if err != nil {
				return err
			}
			g, err := wordgraph.Build(dict.Words(), provider)
			if err != nil {
				return err
			}

			var comps [][]string
			for _, c := range g.Components(!anyLen) {
				if len(c) >= minSize {
					comps = append(comps, c)
				}
			}
			log.WithFields(logrus.Fields{
				"words":      dict.Len(),
				"edges":      g.EdgeCount(),
				"components": len(comps),
			}).Debug("word graph built")

			if flagFmt == "json" {
				if comps == nil {
					comps = [][]string{}
				}
				return printJSON(cmd.OutOrStdout(), componentsOutput{
					Words:      dict.Len(),
					Edges:      g.EdgeCount(),
					Components: comps,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d words, %d edges, %d components\n", dict.Len(), g.EdgeCount(), len(comps))
			for _, c := range comps {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", len(c), strings.Join(c, " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&anyLen, "any-length", false, "Connect words of different lengths")
	cmd.Flags().IntVar(&minSize, "min-size", 1, "Hide components smaller than this")
	return cmd
}

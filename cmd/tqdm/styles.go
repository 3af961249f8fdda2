package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vbauerster/tqdm"
	"github.com/vbauerster/tqdm/decor"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List predefined bar styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sample := decor.Statistics{Total: 8, Current: 5, Bounded: true}
			for _, name := range tqdm.StyleNames() {
				style, err := tqdm.ParseStyle(name)
				if err != nil {
					return err
				}
				var b strings.Builder
				if err := style.Fill(&b, 20, sample); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s|%s|\n", name, b.String())
			}
			return nil
		},
	}
}

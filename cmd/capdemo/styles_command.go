package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/caption/style"
)

func newStylesCommand(ctx *commandContext) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the styles of a catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			if export != "" {
				if err := cat.Save(export); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d styles to %s\n", cat.Len(), export)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), stylesTable(cat))
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "Write the catalog to this .json or .toml file instead of listing it")
	return cmd
}

func stylesTable(cat *style.Catalog) string {
	rows := make([][]string, 0, cat.Len())
	for _, name := range cat.Names() {
		s, err := cat.Get(name)
		if err != nil {
			continue
		}
		n := s.Normalized()
		font := n.Typography.FontFamily
		if font == "" {
			font = "(default)"
		}
		rows = append(rows, []string{
			name,
			n.Effect.String(),
			font,
			strconv.FormatFloat(n.Typography.FontSize, 'f', -1, 64),
			n.Layout.Position.String(),
			strconv.Itoa(n.Layout.WordsPerWindow),
		})
	}
	return renderTable(
		[]string{"Name", "Effect", "Font", "Size", "Position", "Words"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	)
}

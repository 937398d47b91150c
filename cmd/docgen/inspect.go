package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bingoohuang/docgen"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Print the content of generated documents",
	Long: `inspect prints the cells of each sheet of an .xlsx workbook, the
paragraphs and tables of a .docx or .doc document and the page count of a PDF.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, file := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", file)

			if err := docgen.Inspect(cmd.OutOrStdout(), file); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

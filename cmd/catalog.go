package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/motifgen/accompaniment"
	"github.com/jsphweid/motifgen/model"
	"github.com/jsphweid/motifgen/strategy"
	"github.com/jsphweid/motifgen/theory"
	"github.com/jsphweid/motifgen/transform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists keys, chords, transforms, styles and forms",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.OutOrStdout(), catalog())
	},
}

func catalog() model.CatalogResponse {
	forms := make([]string, 0, len(strategy.Forms()))
	for _, f := range strategy.Forms() {
		forms = append(forms, f.String())
	}
	return model.CatalogResponse{
		Keys:       theory.ScaleNames(),
		Chords:     theory.ChordNames(),
		Transforms: transform.Names(),
		Styles:     accompaniment.Names(),
		Forms:      forms,
	}
}

func printCatalog(w io.Writer, c model.CatalogResponse) {
	fmt.Fprintf(w, "keys: %v\n", strings.Join(c.Keys, ", "))
	fmt.Fprintf(w, "chords: %v\n", strings.Join(c.Chords, ", "))
	fmt.Fprintf(w, "transforms: %v\n", strings.Join(c.Transforms, ", "))
	fmt.Fprintf(w, "styles: %v\n", strings.Join(c.Styles, ", "))
	fmt.Fprintf(w, "forms: %v\n", strings.Join(c.Forms, ", "))
}

package cmd

import (
	"fmt"

	"github.com/jsphweid/motifgen/constants"
	"github.com/jsphweid/motifgen/db"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <generation id>",
	Short: "Shows an archived generation",
	Long:  `Reads a generation record from the DynamoDB archive at $ARCHIVE_ENDPOINT.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := db.NewArchive(constants.GetArchiveEndpoint(), constants.GetArchiveTable())
		if err != nil {
			return err
		}
		g, err := archive.GetGeneration(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), g)
		return nil
	},
}

package cmd

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the planweave version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("planweave", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

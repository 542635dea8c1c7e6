package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "medconnect",
	Short:        "Terminal student portal for medical colleges",
	Long:         "MedConnect: subjects and quizzes, library, anatomy practice, clinical rotations, hostel, fees and an AI study assistant, in the terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEDCONNECT_DB env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file (default .env when present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(trackCmd)
}

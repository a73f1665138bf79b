package main

import (
	"context"
	"fmt"
	"os"

	"todolist/internal/client"

	"github.com/spf13/cobra"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Terminal client for the todo API",
	Long:  `Each command loads the current list from the API, applies one action and prints the result.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", client.DefaultBaseURL, "API base URL")
	rootCmd.AddCommand(listCmd, addCmd, toggleCmd, editCmd, rmCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package main is the entry point for the rpg-sheet server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "RPG character sheet rules server",
	Long: `rpg-sheet serves character build rules and a shared dice roller over gRPC,
and prints the progression tables offline.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

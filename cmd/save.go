/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtgboard/tabletop/library"
	"github.com/mtgboard/tabletop/setup"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save <name> <layout-file>",
	Short: "Save a board layout under a name in the layout database",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		data, err := os.ReadFile(args[1])
		if err != nil {
			log.Fatal(err)
		}
		// Reject layouts that would not open later.
		layout, err := setup.NewLayoutParser().Parse(string(data))
		if err != nil {
			log.Fatal(err)
		}
		if _, err := layout.Build(); err != nil {
			log.Fatal(err)
		}
		repo, err := library.Open(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer repo.Close()
		if _, err := repo.AddLayout(name, string(data)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("saved layout %q\n", name)
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

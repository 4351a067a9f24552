/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mtgboard/tabletop/library"
)

// layoutsCmd represents the layouts command
var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List saved board layouts",
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := library.Open(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer repo.Close()
		layouts, err := repo.ListLayouts()
		if err != nil {
			log.Fatal(err)
		}
		for _, layout := range layouts {
			fmt.Println(layout.Name)
		}
	},
}

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved board layout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := library.Open(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer repo.Close()
		if err := repo.DeleteLayout(args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(rmCmd)
}

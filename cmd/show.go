/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtgboard/tabletop/dom"
	"github.com/mtgboard/tabletop/setup"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [layout-file]",
	Short: "Parse a board layout and print the resulting document tree",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := layoutSource(args)
		if err != nil {
			log.Fatal(err)
		}
		layout, err := setup.NewLayoutParser().Parse(source)
		if err != nil {
			log.Fatal(err)
		}
		doc, err := layout.Build()
		if err != nil {
			log.Fatal(err)
		}
		printTree(doc.Body(), 0)
	},
}

func printTree(el *dom.Element, depth int) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(el.Tag)
	for _, c := range el.Classes() {
		b.WriteString("." + c)
	}
	if id := el.Attr("id"); id != "" {
		b.WriteString("#" + id)
	}
	if name := el.Attr("name"); name != "" {
		fmt.Fprintf(&b, " %q", name)
	}
	if src := el.Attr("src"); src != "" {
		b.WriteString(" src=" + src)
	}
	fmt.Println(b.String())
	for _, child := range el.Children() {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/mtgboard/tabletop/board"
	"github.com/mtgboard/tabletop/library"
	"github.com/mtgboard/tabletop/setup"
	"github.com/mtgboard/tabletop/ui"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

//go:embed demo.layout
var demoLayout string

var layoutName string

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [layout-file]",
	Short: "Open a board layout on the interactive tabletop",
	Long: `Open a board layout on the interactive tabletop. The layout comes from
the given file, from the layout database with --layout, or from the
built-in demo board when neither is given.`,
	Args: cobra.MaximumNArgs(1),
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

		logger := newLogger()
		ctl := board.New(doc, board.WithLogger(logger))

		// Window setup
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Tabletop")

		// Start the game loop
		prog := &ui.Program{
			Doc:    doc,
			Ctl:    ctl,
			Width:  screenWidth,
			Height: screenHeight,
			Log:    logger,
		}
		if err := ebiten.RunGame(prog); err != nil {
			log.Fatal(err)
		}
	},
}

// layoutSource resolves the layout text: --layout looks in the database,
// a file argument reads the file, otherwise the embedded demo is used.
func layoutSource(args []string) (string, error) {
	if layoutName != "" {
		repo, err := library.Open(dbPath)
		if err != nil {
			return "", err
		}
		defer repo.Close()
		saved, err := repo.FindLayout(layoutName)
		if err != nil {
			return "", err
		}
		if saved == nil {
			return "", fmt.Errorf("no saved layout named %q", layoutName)
		}
		return saved.Source, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return demoLayout, nil
}

func init() {
	playCmd.Flags().StringVarP(&layoutName, "layout", "l", "", "open a saved layout by name")
	rootCmd.AddCommand(playCmd)
}

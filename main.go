/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mtgboard/tabletop/cmd"

func main() {
	cmd.Execute()
}

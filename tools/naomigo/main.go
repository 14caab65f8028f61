package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/naomigo/naomi/tools/texture"
	"github.com/naomigo/naomi/tools/texview"
)

const usageString = `naomigo is a tool for development of Naomi games.

Usage:

	%s <command> [arguments]

The commands are:

	texture  convert images to textures and palettes
	texview  preview a converted texture
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "texture":
		texture.Main(flag.Args())
	case "texview":
		texview.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}

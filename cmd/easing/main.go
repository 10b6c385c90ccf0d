// Command easing inspects CSS cubic-bezier() timing functions.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "parse":
		err = Parse(args, os.Stdout)
	case "eval":
		err = Eval(args, os.Stdout)
	case "presets":
		err = Presets(args, os.Stdout)
	case "svg":
		err = SVG(args, os.Stdout)
	case "version", "--version":
		fmt.Printf("easing version %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `easing - CSS timing function tool

Usage: easing <command> [options]

Commands:
  parse     Print the canonical form of a timing function
  eval      Evaluate a timing function at points in time
  presets   List the available presets
  svg       Render a timing function as an SVG document
  version   Print version information
  help      Show this help message

Examples:
  easing parse ease-in-out
  easing parse -json 'cubic-bezier(.25, .1, .25, 1)'
  easing eval -n 4 ease
  easing eval ease-out 0.1 0.5 0.9
  easing presets -category ease-in
  easing svg -size 200 ease-in-out-back > curve.svg

Options shared by all commands:
  -presets FILE   Load additional presets from a .yaml, .toml or .hcl file
  -v              Log debug output to stderr`)
}

package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/Parsa-JF/tere/internal/app"
)

func printHelp() {
	fmt.Print(`tere - terminal folder explorer

Browse folders with the keyboard and print the final location on exit,
so a shell wrapper can cd into it:

    tere() { cd "$(command tere "$@")"; }

USAGE:
    tere [OPTIONS]

OPTIONS:
    -h, --help       Show this help message and exit
    --folders-only   Only show folders in the listing
`)
}

func parseArgs(args []string) (apppkg.Options, error) {
	var opts apppkg.Options
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "--folders-only":
			opts.FoldersOnly = true
		default:
			return opts, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (see --help)\n", err)
		os.Exit(2)
	}

	app, err := apppkg.NewApplication(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing ui: %v\n", err)
		os.Exit(1)
	}

	app.Run()
	path := app.CurrentPath()
	app.Close()

	// The final location goes to stdout for shell integration.
	fmt.Println(path)
}

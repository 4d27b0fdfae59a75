package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flowave-io/webwasp/internal/cli"
	"github.com/flowave-io/webwasp/internal/config"
)

func printHelp() {
	fmt.Print(`Webwasp is an interactive console for composing and sending HTTP request headers.

Usage: webwasp [global options] <subcommand> [args]

Available commands:
  help     Show this help output
  version  Show the current Webwasp version
  console  Edit header fields at an interactive prompt with history and TAB completion
  watch    Log changes to a header profile file
`)
}

func main() {
	flag.Usage = printHelp
	flagHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	args := flag.Args()

	if *flagHelp || len(args) == 0 || args[0] == "help" {
		printHelp()
		os.Exit(0)
	}

	switch args[0] {
	case "version":
		fmt.Println("Webwasp", config.Version)
		os.Exit(0)
	case "console":
		os.Exit(cli.RunConsoleCommand(args[1:]))
	case "watch":
		os.Exit(watchCmd(args[1:]))
	}

	fmt.Fprintln(os.Stderr, "Unknown command: ", args[0])
	printHelp()
	os.Exit(1)
}

// Command hwif-log reads control-loop trace files written by hwif-sim.
//
// Usage:
//
//	hwif-log view [options] <file.hwlog>
//	hwif-log export [options] <file.hwlog>
//	hwif-log stats <file.hwlog>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/openhwif/hwif-go/cmd/hwif-log/commands"
)

const usage = `hwif-log - control-loop trace reader

Usage:
  hwif-log <command> [options] <file>

Commands:
  view     Display events in human-readable format
  export   Export events as JSON lines or CSV
  stats    Show statistics about a trace file

Run 'hwif-log <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "view":
		err = runView(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	opts := commands.FilterOptions{}
	fs.StringVar(&opts.RunID, "run-id", "", "Filter by run ID")
	fs.StringVar(&opts.Component, "component", "", "Filter by component name")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (transition, cycle, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Only events at or after this RFC3339 time")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Only events before this RFC3339 time")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hwif-log view [options] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one file argument")
	}

	filter, err := opts.Build()
	if err != nil {
		return err
	}
	return commands.RunView(fs.Arg(0), filter, os.Stdout)
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hwif-log export [options] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one file argument")
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return commands.RunExport(fs.Arg(0), *format, w)
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hwif-log stats <file>")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one file argument")
	}
	return commands.RunStats(fs.Arg(0), os.Stdout)
}

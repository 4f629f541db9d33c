package main

import (
	"flag"
	"fmt"
	"os"
)

// AppFlags holds the parsed command-line surface of the diff analyzer.
type AppFlags struct {
	OssDir     string
	CustomDir  string
	Format     string
	OutputFile string
	ConfigFile string
	Verbose    bool
}

// ParseFlags parses flags and the two positional root directories.
func ParseFlags() AppFlags {
	format := flag.String("format", "", "Report format: console, json, csv or html (default: console)")
	formatAlias := flag.String("f", "", "Alias for -format")

	output := flag.String("output", "", "Output file path. Defaults to a timestamped filename for file formats.")
	outputAlias := flag.String("o", "", "Alias for -output")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	verboseAlias := flag.Bool("v", false, "Alias for -verbose")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <ossDir> <customDir>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	flags := AppFlags{
		Verbose: *verbose || *verboseAlias,
	}

	if *format != "" {
		flags.Format = *format
	} else if *formatAlias != "" {
		flags.Format = *formatAlias
	}

	if *output != "" {
		flags.OutputFile = *output
	} else if *outputAlias != "" {
		flags.OutputFile = *outputAlias
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "[FATAL] Exactly two positional arguments are required: <ossDir> <customDir>")
		flag.Usage()
		os.Exit(2)
	}
	flags.OssDir = args[0]
	flags.CustomDir = args[1]

	return flags
}

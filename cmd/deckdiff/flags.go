package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	OldFile          string
	NewFile          string
	GlobalConfigFile string
	Format           string
	OutputPath       string
	HistoryPath      string
	ListHistory      bool
}

func ParseFlags() AppFlags {
	oldFile := flag.String("old", "", "Path to the old (baseline) .pptx file.")
	oldFileAlias := flag.String("o", "", "Alias for -old")

	newFile := flag.String("new", "", "Path to the new (changed) .pptx file.")
	newFileAlias := flag.String("n", "", "Alias for -new")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	format := flag.String("format", "", "Report format: text or json (overrides config file if set).")
	formatAlias := flag.String("f", "", "Alias for -format")

	outputPath := flag.String("output", "", "Write the report to a file instead of stdout (overrides config file if set).")

	historyPath := flag.String("history", "", "Directory for diff history records (overrides config file if set).")

	listHistory := flag.Bool("list-history", false, "List recorded diff runs from the history directory and exit.")

	flag.Parse()

	flags := AppFlags{
		OutputPath:  *outputPath,
		HistoryPath: *historyPath,
		ListHistory: *listHistory,
	}

	if *oldFile != "" {
		flags.OldFile = *oldFile
	} else if *oldFileAlias != "" {
		flags.OldFile = *oldFileAlias
	}

	if *newFile != "" {
		flags.NewFile = *newFile
	} else if *newFileAlias != "" {
		flags.NewFile = *newFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *format != "" {
		flags.Format = *format
	} else if *formatAlias != "" {
		flags.Format = *formatAlias
	}

	if !flags.ListHistory && (flags.OldFile == "" || flags.NewFile == "") {
		fmt.Fprintln(os.Stderr, "[FATAL] both -old and -new arguments are required")
		flag.Usage()
		os.Exit(1)
	}

	return flags
}

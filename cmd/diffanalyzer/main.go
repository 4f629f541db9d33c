package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"diffanalyzer/internal/classifier"
	"diffanalyzer/internal/common"
	"diffanalyzer/internal/config"
	"diffanalyzer/internal/differ"
	"diffanalyzer/internal/logger"
	"diffanalyzer/internal/prober"
	"diffanalyzer/internal/reporter"
	"diffanalyzer/internal/scanner"

	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	// Command-line flags take precedence over the config file.
	if flags.Format != "" {
		gCfg.ReporterConfig.Format = flags.Format
	}
	if flags.OutputFile != "" {
		gCfg.ReporterConfig.OutputFile = flags.OutputFile
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := buildLogger(gCfg.LogConfig, flags.Verbose)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	format, err := reporter.ParseFormat(gCfg.ReporterConfig.Format)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid report format")
	}

	fileClassifier := classifier.NewFileClassifier(gCfg.ClassifierConfig)

	exclusionFilter, err := scanner.NewExclusionFilter(gCfg.ExclusionConfig.Patterns)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not build exclusion filter")
	}

	directoryDiffer, err := differ.NewDirectoryDifferBuilder().
		WithScanner(scanner.NewTreeScanner(exclusionFilter, zLogger)).
		WithProber(prober.NewFileProber(fileClassifier, gCfg.DiffConfig.TextSampleSize, zLogger)).
		WithDiffConfig(gCfg.DiffConfig).
		WithLogger(zLogger).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not build directory differ")
	}

	result, err := directoryDiffer.Analyze(context.Background(), flags.OssDir, flags.CustomDir)
	if err != nil {
		var notFound *common.InputNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", notFound)
			os.Exit(1)
		}
		zLogger.Fatal().Err(err).Msg("Analysis failed")
	}

	rep, err := reporter.NewReporter(fileClassifier.CategoryNames(), zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize reporter")
	}

	outputPath, err := rep.Generate(result, format, gCfg.ReporterConfig.OutputFile)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Report generation failed")
	}
	if outputPath != "" {
		zLogger.Info().Str("path", outputPath).Msg("Report written")
	}
}

// buildLogger constructs the application logger, raising the level to debug
// when the verbose flag is set.
func buildLogger(cfg config.LogConfig, verbose bool) (zerolog.Logger, error) {
	if verbose {
		return logger.NewVerbose(cfg)
	}
	return logger.New(cfg)
}

package main

import (
	"flag"
	"log"

	"diffanalyzer/internal/config"
	"diffanalyzer/internal/generator"
	"diffanalyzer/internal/logger"
)

func main() {
	output := flag.String("output", "", "Output JSON Lines file (default from config)")
	outputAlias := flag.String("o", "", "Alias for -output")
	duration := flag.Int("duration", 0, "Seconds of data to generate (default from config)")
	frequency := flag.Int("frequency", 0, "Message ticks per second (default from config)")
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file")
	flag.Parse()

	gCfg, err := config.LoadGlobalConfig(*configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", *configFile, err)
	}

	if *output != "" {
		gCfg.GeneratorConfig.OutputFile = *output
	} else if *outputAlias != "" {
		gCfg.GeneratorConfig.OutputFile = *outputAlias
	}
	if *duration > 0 {
		gCfg.GeneratorConfig.DurationSeconds = *duration
	}
	if *frequency > 0 {
		gCfg.GeneratorConfig.FrequencyHz = *frequency
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	gen := generator.NewTelemetryGenerator(gCfg.GeneratorConfig, zLogger)
	path, count, err := gen.WriteFile()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Telemetry generation failed")
	}

	zLogger.Info().Str("path", path).Int("messages", count).Msg("Done")
}

package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path provided on the command line
// 2. DIFFANALYZER_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// Returns an empty string when no config file is found.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
		return ""
	}

	envPath := os.Getenv("DIFFANALYZER_CONFIG_PATH")
	if envPath != "" && fileExists(envPath) {
		return envPath
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for _, file := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(cwd, file)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists checks whether path names an existing regular file.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

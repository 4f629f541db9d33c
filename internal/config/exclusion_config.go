package config

// ExclusionConfig defines the path patterns dropped by the tree scanner.
// Patterns are regular expressions matched against tree-relative,
// forward-slash paths; a path matching any pattern is excluded.
type ExclusionConfig struct {
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// NewDefaultExclusionConfig returns the built-in exclusion pattern set:
// version control metadata, dependency and build output directories, editor
// state, logs, temp/minified/map/lock files and language caches.
func NewDefaultExclusionConfig() ExclusionConfig {
	return ExclusionConfig{
		Patterns: []string{
			`node_modules`,
			`\.git`,
			`\.DS_Store`,
			`dist`,
			`build`,
			`\.nyc_output`,
			`coverage`,
			`\.vscode`,
			`\.idea`,
			`\.log$`,
			`\.tmp$`,
			`\.min\.js$`,
			`\.map$`,
			`\.lock$`,
			`package-lock\.json$`,
			`yarn\.lock$`,
			`\.pyc$`,
			`__pycache__`,
			`\.pytest_cache`,
		},
	}
}

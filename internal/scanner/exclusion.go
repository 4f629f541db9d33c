package scanner

import (
	"regexp"

	"diffanalyzer/internal/common"
)

// ExclusionFilter drops paths matching any of a fixed set of patterns.
// Patterns are applied to tree-relative, forward-slash paths so they behave
// the same on every platform.
type ExclusionFilter struct {
	patterns []*regexp.Regexp
}

// NewExclusionFilter compiles the given patterns into a filter.
func NewExclusionFilter(patterns []string) (*ExclusionFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, common.WrapErrorf(err, "failed to compile exclusion pattern '%s'", pattern)
		}
		compiled = append(compiled, re)
	}
	return &ExclusionFilter{patterns: compiled}, nil
}

// ShouldExclude reports whether relPath matches any exclusion pattern.
func (ef *ExclusionFilter) ShouldExclude(relPath string) bool {
	for _, re := range ef.patterns {
		if re.MatchString(relPath) {
			return true
		}
	}
	return false
}

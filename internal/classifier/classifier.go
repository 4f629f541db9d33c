package classifier

import (
	"path"
	"strings"

	"diffanalyzer/internal/config"
)

// CategoryOther is assigned to files whose extension matches no rule.
const CategoryOther = "other"

type categoryRule struct {
	name       string
	extensions map[string]struct{}
}

// FileClassifier maps file paths to semantic categories by extension.
// Classification is a pure function of the path; content is never consulted.
type FileClassifier struct {
	rules []categoryRule
}

// NewFileClassifier builds a classifier from the ordered category table.
// Rule order is preserved: an extension listed in more than one category
// resolves to the first rule that contains it.
func NewFileClassifier(cfg config.ClassifierConfig) *FileClassifier {
	rules := make([]categoryRule, 0, len(cfg.Categories))
	for _, rule := range cfg.Categories {
		extensions := make(map[string]struct{}, len(rule.Extensions))
		for _, ext := range rule.Extensions {
			extensions[strings.ToLower(ext)] = struct{}{}
		}
		rules = append(rules, categoryRule{name: rule.Name, extensions: extensions})
	}
	return &FileClassifier{rules: rules}
}

// Classify returns the category for the given path, or CategoryOther when the
// lowercased extension appears in no rule.
func (fc *FileClassifier) Classify(filePath string) string {
	ext := strings.ToLower(path.Ext(filePath))
	if ext == "" {
		return CategoryOther
	}

	for _, rule := range fc.rules {
		if _, ok := rule.extensions[ext]; ok {
			return rule.name
		}
	}
	return CategoryOther
}

// CategoryNames returns every category name in table order, with
// CategoryOther appended. The summary uses this to emit zero counts for
// categories with no entries.
func (fc *FileClassifier) CategoryNames() []string {
	names := make([]string, 0, len(fc.rules)+1)
	for _, rule := range fc.rules {
		names = append(names, rule.name)
	}
	return append(names, CategoryOther)
}

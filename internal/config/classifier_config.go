package config

// CategoryRule maps one category name to the file extensions it covers.
// Extensions are lowercased and include the leading dot.
type CategoryRule struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	Extensions []string `json:"extensions" yaml:"extensions" validate:"dive,required"`
}

// ClassifierConfig defines the ordered category table used to classify files
// by extension. Order matters: extensions appearing in more than one category
// (such as .md in markup and doc) resolve to the first matching rule.
type ClassifierConfig struct {
	Categories []CategoryRule `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// NewDefaultClassifierConfig returns the built-in category table.
func NewDefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Categories: []CategoryRule{
			{Name: "code", Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".py", ".java", ".cpp", ".c", ".h", ".cs", ".go", ".rs", ".rb", ".php"}},
			{Name: "config", Extensions: []string{".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf", ".env"}},
			{Name: "style", Extensions: []string{".css", ".scss", ".sass", ".less", ".styl"}},
			{Name: "markup", Extensions: []string{".html", ".htm", ".xml", ".svg", ".md", ".rst"}},
			{Name: "data", Extensions: []string{".csv", ".tsv", ".sql", ".db", ".sqlite"}},
			{Name: "image", Extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg", ".ico", ".webp"}},
			{Name: "doc", Extensions: []string{".txt", ".md", ".rst", ".pdf", ".doc", ".docx"}},
		},
	}
}

package models

// CategoryCounts tallies entries of one category per change group.
type CategoryCounts struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Summary holds per-category tallies derived from an AnalysisResult. It is
// computed on demand and never stored alongside the result.
type Summary struct {
	TotalAdded    int                       `json:"total_added"`
	TotalRemoved  int                       `json:"total_removed"`
	TotalModified int                       `json:"total_modified"`
	Categories    map[string]CategoryCounts `json:"categories"`
}

// BuildSummary derives a Summary from the result. Every name in categories is
// present in the output map even when all its counts are zero. Modified
// entries are counted under the custom-side category.
func BuildSummary(result *AnalysisResult, categories []string) Summary {
	summary := Summary{
		TotalAdded:    len(result.Added),
		TotalRemoved:  len(result.Removed),
		TotalModified: len(result.Modified),
		Categories:    make(map[string]CategoryCounts, len(categories)),
	}

	for _, name := range categories {
		summary.Categories[name] = CategoryCounts{}
	}

	bump := func(category string, update func(*CategoryCounts)) {
		counts := summary.Categories[category]
		update(&counts)
		summary.Categories[category] = counts
	}

	for _, entry := range result.Added {
		bump(entry.Stats.Category, func(c *CategoryCounts) { c.Added++ })
	}
	for _, entry := range result.Removed {
		bump(entry.Stats.Category, func(c *CategoryCounts) { c.Removed++ })
	}
	for _, entry := range result.Modified {
		bump(entry.CustomStats.Category, func(c *CategoryCounts) { c.Modified++ })
	}

	return summary
}

// Package classify assigns a document type to extracted text using keyword
// scoring with explicit priority overrides. Classification never fails:
// absence of signal yields the general catch-all.
package classify

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nyaysathi/nyaysathi/internal/core/domain"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// minCategoryScore is the minimum keyword-set score required before a category
// beats the general catch-all.
const minCategoryScore = 2

type category struct {
	Type     domain.DocumentType `yaml:"type"`
	Keywords []string            `yaml:"keywords"`
}

type override struct {
	Type       domain.DocumentType `yaml:"type"`
	MinMatches int                 `yaml:"min_matches"`
	Keywords   []string            `yaml:"keywords"`
}

type tables struct {
	Overrides  []override `yaml:"overrides"`
	Categories []category `yaml:"categories"`
}

type Classifier struct {
	tables tables
}

func New() *Classifier {
	var t tables
	if err := yaml.Unmarshal(keywordsYAML, &t); err != nil {
		// The table is a compile-time asset; failing to parse it is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("classify: parse keywords.yaml: %v", err))
	}
	return &Classifier{tables: t}
}

// Classify scores the text against each category's keyword set. Override
// predicates run first: resumes share several indicator words with the
// agreement and government_letter sets and would otherwise be misclassified.
// Ties resolve to the category listed first in keywords.yaml.
func (c *Classifier) Classify(text string) domain.ClassificationResult {
	lower := strings.ToLower(text)

	for _, ov := range c.tables.Overrides {
		if score := countDistinct(lower, ov.Keywords); score >= ov.MinMatches {
			return domain.ClassificationResult{DocumentType: ov.Type, Score: score}
		}
	}

	best := domain.ClassificationResult{DocumentType: domain.TypeGeneral}
	for _, cat := range c.tables.Categories {
		score := countDistinct(lower, cat.Keywords)
		if score > best.Score {
			best = domain.ClassificationResult{DocumentType: cat.Type, Score: score}
		}
	}

	if best.Score < minCategoryScore {
		return domain.ClassificationResult{DocumentType: domain.TypeGeneral, Score: best.Score}
	}
	return best
}

// countDistinct counts how many distinct keywords occur as substrings of the
// lower-cased text. Repeated occurrences of one keyword do not add up.
func countDistinct(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}

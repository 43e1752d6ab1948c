// Package strategy implements the criminal-case strategy decision engine: a
// deterministic pipeline that reconciles documents, disclosure timelines and
// declared dependencies into one canonical disclosure state, then derives
// ranked defense routes, confidence levels, time-pressure leverage, decision
// checkpoints and hearing scripts. Every step is a pure function of the case
// snapshot; the package holds no state between invocations.
package strategy

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"counsel/internal/domain"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// catalogueItem is one declarative row of the 7-item disclosure catalogue.
type catalogueItem struct {
	Key      string          `yaml:"key"`
	Label    string          `yaml:"label"`
	Severity domain.Severity `yaml:"severity"`
	Patterns [][]string      `yaml:"patterns"`
}

type ruleTables struct {
	Items   []catalogueItem       `yaml:"items"`
	Signals map[string][][]string `yaml:"signals"`
}

var tables = mustLoadTables()

func mustLoadTables() ruleTables {
	var t ruleTables
	if err := yaml.Unmarshal(catalogueYAML, &t); err != nil {
		panic(fmt.Sprintf("load catalogue.yaml: %v", err))
	}
	if len(t.Items) != 7 {
		panic(fmt.Sprintf("catalogue.yaml: expected 7 disclosure items, got %d", len(t.Items)))
	}
	return t
}

// Catalogue returns the fixed disclosure item catalogue in declaration order.
func Catalogue() []domain.DisclosureItem {
	out := make([]domain.DisclosureItem, 0, len(tables.Items))
	for _, it := range tables.Items {
		out = append(out, domain.DisclosureItem{Key: it.Key, Label: it.Label, Severity: it.Severity})
	}
	return out
}

// matchGroup reports whether every substring of the group occurs in text.
// Text must already be lowercased.
func matchGroup(text string, group []string) bool {
	for _, kw := range group {
		if !strings.Contains(text, strings.ToLower(kw)) {
			return false
		}
	}
	return len(group) > 0
}

// matchAny reports whether any AND-group matches the lowercased text.
func matchAny(text string, groups [][]string) bool {
	for _, g := range groups {
		if matchGroup(text, g) {
			return true
		}
	}
	return false
}

func signalGroups(name string) [][]string {
	return tables.Signals[name]
}

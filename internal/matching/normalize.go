// Package matching implements the deterministic candidate-to-job scoring engine.
package matching

import "strings"

// skillAliases maps each canonical skill to its known surface-form variants.
// Extending the table changes matching coverage without touching the scoring
// algorithm. Canonical keys are lower-case and are themselves valid inputs.
var skillAliases = map[string][]string{
	"javascript": {"js", "node", "nodejs", "node.js"},
	"typescript": {"ts"},
	"python":     {"py"},
	"go":         {"golang"},
	"react":      {"reactjs", "react.js"},
	"angular":    {"angularjs", "angular.js"},
	"vue":        {"vuejs", "vue.js"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud", "google cloud platform"},
	"azure":      {"microsoft azure"},
	"docker":     {},
	"kubernetes": {"k8s"},
	"postgresql": {"postgres"},
	"ci-cd":      {"cicd", "ci/cd"},
}

// aliasToCanonical is the inverted lookup built from skillAliases.
var aliasToCanonical = buildAliasIndex()

func buildAliasIndex() map[string]string {
	index := make(map[string]string)
	for canonical, aliases := range skillAliases {
		index[canonical] = canonical
		for _, alias := range aliases {
			index[alias] = canonical
		}
	}
	return index
}

// NormalizeSkill maps a surface-form skill string to its canonical form so
// that synonyms compare equal. Unknown skills pass through lower-cased and
// trimmed. Always returns a string; there are no error conditions.
func NormalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := aliasToCanonical[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkillSet normalizes a list of skills into a canonical-form set.
func NormalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := NormalizeSkill(skill)
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// KnownSkills returns every canonical skill and alias in the synonym table.
// The ingestion package scans posting text against this vocabulary.
func KnownSkills() []string {
	known := make([]string, 0, len(aliasToCanonical))
	for surface := range aliasToCanonical {
		known = append(known, surface)
	}
	return known
}

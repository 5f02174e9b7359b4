// Package rules provides a YAML-based keyword engine for narration
// categorization.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

//go:embed rules.yaml
var embeddedRules []byte

// Rule maps one lower-cased keyword substring to a category.
//
// Rules should be created via YAML loading (NewEngine, LoadEmbedded,
// LoadFromFile), which validates every invariant:
//   - Keyword must not be empty after trimming
//   - Category must be a valid domain.Category
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// RuleSet represents the top-level YAML structure
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Engine performs ordered first-match keyword lookup on narration text.
//
// Rules are evaluated in YAML file order; the file order IS the priority.
// This is deliberately a first-match policy, not best-match or longest-match:
// placing the Internal keyword group before the Transfer group is what keeps
// auto-save sweeps out of the transfer bucket.
type Engine struct {
	rules []Rule
}

// NewEngine creates a rules engine from YAML data, preserving file order.
func NewEngine(rulesData []byte) (*Engine, error) {
	var ruleSet RuleSet
	if err := yaml.Unmarshal(rulesData, &ruleSet); err != nil {
		return nil, fmt.Errorf("failed to parse YAML rules (check syntax, indentation, and field names): %w", err)
	}

	if len(ruleSet.Rules) == 0 {
		return nil, fmt.Errorf("rule set contains no rules")
	}

	for i, rule := range ruleSet.Rules {
		if strings.TrimSpace(rule.Keyword) == "" {
			return nil, fmt.Errorf("rule %d: keyword cannot be empty", i)
		}
		if !domain.ValidateCategory(domain.Category(rule.Category)) {
			return nil, fmt.Errorf("rule %d (%s): invalid category %q", i, rule.Keyword, rule.Category)
		}
	}

	rulesCopy := make([]Rule, len(ruleSet.Rules))
	copy(rulesCopy, ruleSet.Rules)

	return &Engine{rules: rulesCopy}, nil
}

// LoadEmbedded loads the embedded rules.yaml file
func LoadEmbedded() (*Engine, error) {
	engine, err := NewEngine(embeddedRules)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded rules (possible binary corruption): %w", err)
	}
	return engine, nil
}

// LoadFromFile loads rules from a filesystem path
func LoadFromFile(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	engine, err := NewEngine(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %q: %w", path, err)
	}
	return engine, nil
}

// Match scans the text for the first rule (in file order) whose keyword is a
// substring of the lower-cased input. Returns (CategoryUncategorized, false)
// when nothing matches; an unmatched narration is never an error.
func (e *Engine) Match(text string) (domain.Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range e.rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if strings.Contains(normalized, keyword) {
			return domain.Category(rule.Category), true
		}
	}

	return domain.CategoryUncategorized, false
}

// GetRules returns a copy of the rules in evaluation order, for
// inspection/debugging.
func (e *Engine) GetRules() []Rule {
	result := make([]Rule, len(e.rules))
	copy(result, e.rules)
	return result
}

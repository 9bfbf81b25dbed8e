package spec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse matches every *ParseError
	ErrParse = errors.New("spec parse error")
	// ErrValidation matches every *ValidationError
	ErrValidation = errors.New("spec validation error")
)

// ParseError reports input that cannot be interpreted as a spec at all
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spec: parse: %s: %v", e.Reason, e.Err)
	}
	return "spec: parse: " + e.Reason
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// Rule names a validation rule in machine-readable form
type Rule string

const (
	RuleRequired    Rule = "required"
	RuleEnum        Rule = "enum"
	RuleRange       Rule = "range"
	RuleLiteral     Rule = "literal"
	RuleColor       Rule = "color"
	RuleYListEmpty  Rule = "y_list_empty"
	RuleYListDup    Rule = "y_list_duplicates"
	RuleY2ForSubset Rule = "y2_for_subset"
	RuleYListSeries Rule = "y_list_with_series"
	RuleHeatmapXYZ  Rule = "heatmap_requires_xyz"
	RuleHistogramXY Rule = "histogram_requires_x_or_y"
	RuleAreaMode    Rule = "area_mode"
)

// Violation is a single failed rule
type Violation struct {
	Rule    Rule   `json:"rule"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (%s): %s", v.Field, v.Rule, v.Message)
}

// ValidationError reports a well-formed spec that breaks one or more rules
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.String())
	}
	return "spec: validation: " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Rules returns the violated rule names in report order
func (e *ValidationError) Rules() []Rule {
	rules := make([]Rule, 0, len(e.Violations))
	for _, v := range e.Violations {
		rules = append(rules, v.Rule)
	}
	return rules
}

// HasRule reports whether the rule was violated
func (e *ValidationError) HasRule(rule Rule) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

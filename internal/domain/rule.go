package domain

import "strings"

// RuleDelimiter separates a rule's type tag from its parameter segment.
const RuleDelimiter = "|"

// SplitRule splits rule at the first delimiter into its tag and raw parameter segment.
func SplitRule(rule string) (tag, params string, err error) {
	if strings.TrimSpace(rule) == "" {
		return "", "", &EmptyRuleError{Rule: rule, Reason: "rule is empty"}
	}
	idx := strings.Index(rule, RuleDelimiter)
	if idx < 0 {
		return "", "", &EmptyRuleError{Rule: rule, Reason: "missing '|' delimiter"}
	}
	tag = rule[:idx]
	if tag == "" {
		return "", "", &EmptyRuleError{Rule: rule, Reason: "missing type tag"}
	}
	return tag, rule[idx+1:], nil
}

// SplitParams is the default secondary split of a parameter segment.
func SplitParams(segment string) []string {
	return strings.Split(segment, RuleDelimiter)
}

package model

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// QuotaRule caps how many courses whose number matches Pattern a timetable may hold
type QuotaRule struct {
	Pattern string `mapstructure:"pattern" validate:"required"`
	Limit   int    `mapstructure:"limit" validate:"gte=0"`
}

// DefaultQuotas are the registration office's caps: two PTSS110 courses outside the listed exceptions,
// and one course among the 1190 and FINE110 families.
var DefaultQuotas = []QuotaRule{
	{Pattern: `^PTSS110(?!058|059|060|061|092).*`, Limit: 2},
	{Pattern: `^(([0-9a-zA-Z]){3}|([0-9a-zA-Z]){4})1190.*|^FINE110.*`, Limit: 1},
}

type quota struct {
	rule    QuotaRule
	pattern *regexp2.Regexp
}

func compileQuotas(rules []QuotaRule) ([]quota, error) {
	quotas := make([]quota, 0, len(rules))
	for _, rule := range rules {
		if rule.Limit < 0 {
			return nil, fmt.Errorf("%w: quota \"%v\" has a negative limit", ErrConfiguration, rule.Pattern)
		}
		pattern, err := regexp2.Compile(rule.Pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w: quota pattern \"%v\": %v", ErrConfiguration, rule.Pattern, err)
		}
		quotas = append(quotas, quota{rule: rule, pattern: pattern})
	}
	return quotas, nil
}

// Matches searches the pattern in number; anchors in the pattern force prefix or full matches
func (quota quota) Matches(number string) bool {
	matched, err := quota.pattern.MatchString(number)
	return err == nil && matched // Errors only come from match timeouts, which are disabled
}

package services

import (
	"regexp"
	"strings"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
)

type textFilter struct {
	logger         outbound.LoggerPort
	keywords       []string
	digitRunRegexp *regexp.Regexp
}

func NewTextFilter(logger outbound.LoggerPort, keywords []string) inbound.TextFilterPort {
	return &textFilter{
		logger:         logger,
		keywords:       keywords,
		digitRunRegexp: regexp.MustCompile(`\d{5,}`),
	}
}

// Filter drops fragments carrying boilerplate keywords or long digit runs
// (phone numbers, business registration numbers). If that would drop
// everything, the original list is returned unchanged so downstream stages
// are never starved.
func (f *textFilter) Filter(fragments []string) []string {
	filtered := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if f.containsKeyword(fragment) {
			continue
		}
		if f.digitRunRegexp.MatchString(fragment) {
			continue
		}
		filtered = append(filtered, fragment)
	}

	if len(filtered) == 0 && len(fragments) > 0 {
		f.logger.WarnWithFields("Filtering removed every fragment, keeping the original list", map[string]interface{}{
			"fragments": len(fragments),
		})
		return fragments
	}
	return filtered
}

func (f *textFilter) containsKeyword(fragment string) bool {
	for _, keyword := range f.keywords {
		if strings.Contains(fragment, keyword) {
			return true
		}
	}
	return false
}

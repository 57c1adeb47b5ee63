package jira

import (
	"strings"

	"github.com/danielolaszy/tix/pkg/models"
)

// matchLinkType resolves a free-text query against the link type catalog.
// Tiers, applied in order: exact name match, substring of the name,
// substring of either direction label. All comparisons are case-insensitive
// and within a tier the first entry in catalog order wins, even when
// several match. The tie-break is deliberate: querying "relat" against
// "Relates" and "Is related to" picks whichever the server listed first.
func matchLinkType(types []models.LinkType, query string) *models.LinkType {
	q := strings.ToLower(query)

	for i := range types {
		if strings.ToLower(types[i].Name) == q {
			return &types[i]
		}
	}

	for i := range types {
		if strings.Contains(strings.ToLower(types[i].Name), q) {
			return &types[i]
		}
	}

	for i := range types {
		if strings.Contains(strings.ToLower(types[i].Inward), q) ||
			strings.Contains(strings.ToLower(types[i].Outward), q) {
			return &types[i]
		}
	}

	return nil
}

// matchTransition applies the same policy minus the label tier: exact name
// match first, then substring, first catalog entry winning within a tier.
func matchTransition(transitions []models.Transition, query string) *models.Transition {
	q := strings.ToLower(query)

	for i := range transitions {
		if strings.ToLower(transitions[i].Name) == q {
			return &transitions[i]
		}
	}

	for i := range transitions {
		if strings.Contains(strings.ToLower(transitions[i].Name), q) {
			return &transitions[i]
		}
	}

	return nil
}

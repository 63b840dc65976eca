package validators

import (
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
)

// routeKey identifies an ordered (source, target) pair. Directionality
// matters: A→B and B→A are distinct routes.
type routeKey struct {
	source string
	target string
}

// FindDuplicates groups flows sharing the same ordered (source, target)
// pair and returns only the groups with two or more members. Members keep
// their original relative order; groups are ordered by first occurrence.
func FindDuplicates(flows []*entities.Flow) [][]*entities.Flow {
	groups := make(map[routeKey][]*entities.Flow)
	order := make([]routeKey, 0)

	for _, flow := range flows {
		if flow == nil {
			continue
		}
		key := routeKey{source: flow.Source(), target: flow.Target()}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], flow)
	}

	duplicates := make([][]*entities.Flow, 0)
	for _, key := range order {
		if group := groups[key]; len(group) > 1 {
			duplicates = append(duplicates, group)
		}
	}
	return duplicates
}

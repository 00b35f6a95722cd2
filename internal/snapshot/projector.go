package snapshot

import (
	"strings"

	"gw2-tracker/internal/models"
)

// Project keeps exactly the valuation entries whose key starts with one of
// the given prefixes. Plain prefix match, no patterns. An empty result is
// fine; it just means nothing matched.
func Project(valuation map[string]float64, prefixes []string) models.FieldMap {
	out := models.FieldMap{}
	for key, value := range valuation {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				out[key] = value
				break
			}
		}
	}
	return out
}

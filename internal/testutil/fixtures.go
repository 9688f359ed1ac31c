package testutil

import (
	"encoding/json"
)

// StatsSections is a complete set of wrapped stats sections
func StatsSections() map[string]interface{} {
	return map[string]interface{}{
		"game_duration": 96300,
		"role_champs_played": map[string]interface{}{
			"MIDDLE": map[string]int{"Ahri": 42, "Kai'Sa": 7},
		},
		"deaths_stats":        map[string]interface{}{"total": 512, "avg": 4.1},
		"kills_assists_stats": map[string]interface{}{"kills": 830, "assists": 1204},
		"metrics":             map[string]interface{}{"wins": 70, "losses": 55},
		"objectives":          map[string]interface{}{"dragons": 61, "barons": 12},
	}
}

// WrappedBody builds a /getWrapped response with the given sections removed
func WrappedBody(omit ...string) string {
	sections := StatsSections()
	for _, name := range omit {
		delete(sections, name)
	}
	return MustJSON(map[string]interface{}{"content": sections})
}

// MustJSON marshals v and panics on failure
func MustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

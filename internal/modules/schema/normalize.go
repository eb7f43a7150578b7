package schema

import (
	"encoding/json"
	"strings"
)

// normalizeCategories decodes the raw categories document, converting any
// legacy entry stored as a bare value array into the current
// {label, values} shape. Running it on already-normalized data is a no-op;
// the changed flag tells the caller whether a re-save is needed.
func normalizeCategories(raw []byte) (map[string]CategoryDefinition, bool, error) {
	if len(raw) == 0 {
		return map[string]CategoryDefinition{}, false, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, err
	}

	out := make(map[string]CategoryDefinition, len(entries))
	changed := false
	for key, entry := range entries {
		var def CategoryDefinition
		if err := json.Unmarshal(entry, &def); err == nil {
			if def.Values == nil {
				def.Values = []string{}
			}
			out[key] = def
			continue
		}

		// Legacy shape: a raw value list with no label.
		var values []string
		if err := json.Unmarshal(entry, &values); err != nil {
			return nil, false, err
		}
		out[key] = CategoryDefinition{
			Label:  strings.ToUpper(key),
			Values: values,
		}
		changed = true
	}
	return out, changed, nil
}

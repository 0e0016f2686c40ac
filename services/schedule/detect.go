package schedule

import (
	"encoding/json"

	"mindwell/models"
)

// Modality keys of the modern schema generation. The snake_case spelling
// is how profiles are persisted today; camelCase shows up in records
// written by an older client build.
var modernModalityKeys = []string{"online", "in_person", "inPerson"}

// DetectFormat classifies an untrusted raw availability value as one of
// the persisted schema generations. It never fails: malformed JSON
// strings, non-object values, and unrecognized layouts all classify as
// Empty. For Legacy and Modern the decoded top-level object is returned
// alongside the tag.
func DetectFormat(input any) (models.ScheduleFormat, map[string]any) {
	obj, ok := asObject(input)
	if !ok {
		return models.ScheduleFormatEmpty, nil
	}

	// A modality key whose value is itself an object marks the modern
	// layout, even when stray day keys coexist at the top level.
	for _, key := range modernModalityKeys {
		if nested, ok := obj[key]; ok {
			if _, isObj := nested.(map[string]any); isObj {
				return models.ScheduleFormatModern, obj
			}
		}
	}

	for key := range obj {
		if IsDayKey(key) {
			return models.ScheduleFormatLegacy, obj
		}
	}

	return models.ScheduleFormatEmpty, nil
}

// asObject coerces the raw value into a string-keyed object, decoding
// JSON-encoded strings along the way. Parse failures are swallowed.
func asObject(input any) (map[string]any, bool) {
	switch v := input.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, false
		}
		obj, ok := decoded.(map[string]any)
		return obj, ok
	default:
		return nil, false
	}
}

package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToPlainValue rewrites the bson container types the mongo driver decodes
// untyped fields into (primitive.D, primitive.M, primitive.A) as plain
// maps, slices, and scalars. The schedule normalizer only understands the
// JSON-shaped world, so raw availability values pass through here before
// normalization.
func ToPlainValue(value any) any {
	switch v := value.(type) {
	case primitive.D:
		plain := make(map[string]any, len(v))
		for _, elem := range v {
			plain[elem.Key] = ToPlainValue(elem.Value)
		}
		return plain
	case primitive.M:
		plain := make(map[string]any, len(v))
		for key, val := range v {
			plain[key] = ToPlainValue(val)
		}
		return plain
	case map[string]any:
		plain := make(map[string]any, len(v))
		for key, val := range v {
			plain[key] = ToPlainValue(val)
		}
		return plain
	case primitive.A:
		plain := make([]any, len(v))
		for i, item := range v {
			plain[i] = ToPlainValue(item)
		}
		return plain
	case []any:
		plain := make([]any, len(v))
		for i, item := range v {
			plain[i] = ToPlainValue(item)
		}
		return plain
	default:
		return value
	}
}

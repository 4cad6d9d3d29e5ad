package competency

// tableSchema is the JSON Schema for injected skill-table files:
// subject -> tier name -> non-empty array of skill IDs.
var tableSchema = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":          "object",
		"minProperties": 1,
		"propertyNames": map[string]any{
			"enum": []any{"beginner", "intermediate", "advanced", "expert"},
		},
		"additionalProperties": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
}

package competency

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// LoadTable reads a skill-table file, validates it against the table
// schema, and returns the parsed Table.
func LoadTable(filePath string) (Table, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read skill table: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable validates and parses raw skill-table JSON.
func ParseTable(raw []byte) (Table, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid skill table JSON: %w", err)
	}

	schema, err := getTableSchema()
	if err != nil {
		return nil, fmt.Errorf("compile table schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("skill table schema validation failed: %w", err)
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode skill table: %w", err)
	}
	return table, nil
}

// getTableSchema compiles the table schema once and caches it.
func getTableSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean
		// representation.
		defBytes, err := json.Marshal(tableSchema)
		if err != nil {
			compileSchemaError = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaError = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://skill-table.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaError
}

package storage

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// snapshotSchemaJSON describes a stored board: either the bare column array or
// the versioned envelope. Unknown properties are allowed.
const snapshotSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "column": {
      "type": "object",
      "required": ["id", "title", "tasks"],
      "properties": {
        "id":    {"type": "string", "minLength": 1},
        "title": {"type": "string"},
        "tasks": {"type": "array", "items": {"type": "string"}}
      }
    },
    "columns": {
      "type": "array",
      "items": {"$ref": "#/definitions/column"}
    }
  },
  "oneOf": [
    {"$ref": "#/definitions/columns"},
    {
      "type": "object",
      "required": ["version", "columns"],
      "properties": {
        "version": {"type": "integer", "minimum": 0},
        "columns": {"$ref": "#/definitions/columns"}
      }
    }
  ]
}`

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaJSON)

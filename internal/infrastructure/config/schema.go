package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

const schemaFileName = "settings.schema.json"

// Schema returns the JSON schema of settings.json.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&entity.Settings{})

	schema.ID = "https://github.com/bnema/synapse/settings.schema.json"
	schema.Title = "Synapse Settings"
	schema.Description = "Device settings for synapse, a macro-pad binding engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the schema next to the settings file and returns its path.
func WriteSchemaFile(dir string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}

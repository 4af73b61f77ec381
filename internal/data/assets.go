// Package data loads the game catalogs (fish species, gear) from JSON
// asset files. Files are validated against embedded JSON Schemas before
// decoding, so a broken catalog fails loudly at startup instead of
// surfacing mid-run.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/katuneko/lurhook/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// LoadFishTypes читает каталог рыб из JSON-файла.
func LoadFishTypes(path string) ([]domain.FishType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fish catalog: %w", err)
	}
	return ParseFishTypes(raw)
}

// ParseFishTypes декодирует каталог рыб из сырого JSON.
func ParseFishTypes(raw []byte) ([]domain.FishType, error) {
	if err := validate(raw, "fish.schema.json"); err != nil {
		return nil, fmt.Errorf("fish catalog: %w", err)
	}
	var types []domain.FishType
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, fmt.Errorf("fish catalog: %w", err)
	}
	for _, ft := range types {
		// Схема проверяет каждое поле отдельно, но не их связь
		if ft.MaxDepth < ft.MinDepth {
			return nil, fmt.Errorf("fish catalog: %s: depth range [%d,%d] is inverted",
				ft.ID, ft.MinDepth, ft.MaxDepth)
		}
	}
	return types, nil
}

// LoadItemTypes читает каталог снаряжения из JSON-файла.
func LoadItemTypes(path string) ([]domain.ItemType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("item catalog: %w", err)
	}
	return ParseItemTypes(raw)
}

// ParseItemTypes декодирует каталог снаряжения из сырого JSON.
func ParseItemTypes(raw []byte) ([]domain.ItemType, error) {
	if err := validate(raw, "items.schema.json"); err != nil {
		return nil, fmt.Errorf("item catalog: %w", err)
	}
	var types []domain.ItemType
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, fmt.Errorf("item catalog: %w", err)
	}
	return types, nil
}

// validate прогоняет сырой JSON через встроенную схему.
func validate(raw []byte, schemaName string) error {
	schemaRaw, err := schemaFS.ReadFile("schemas/" + schemaName)
	if err != nil {
		return fmt.Errorf("embedded schema %s: %w", schemaName, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(string(schemaRaw))); err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/outpostdev/typeforge/model/extract"
	"github.com/outpostdev/typeforge/model/registry"
	"github.com/outpostdev/typeforge/pkg/value"
)

// loadExtractRegistry reads one or more JSON-encoded extract.Registry
// fragments (each the normalized {classes, structs, enums} shape a
// front-end type-registry dump would produce) and merges them into one.
func loadExtractRegistry(paths []string) (extract.Registry, error) {
	out := extract.Registry{
		Classes: map[string]extract.Class{},
		Structs: map[string]extract.Struct{},
		Enums:   map[string]extract.Enum{},
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return extract.Registry{}, fmt.Errorf("typeforge: reading %s: %w", path, err)
		}
		var fragment extract.Registry
		if err := json.Unmarshal(data, &fragment); err != nil {
			return extract.Registry{}, fmt.Errorf("typeforge: parsing %s: %w", path, err)
		}
		for fqn, c := range fragment.Classes {
			out.Classes[fqn] = c
		}
		for fqn, s := range fragment.Structs {
			out.Structs[fqn] = s
		}
		for fqn, e := range fragment.Enums {
			out.Enums[fqn] = e
		}
	}
	return out, nil
}

// loadModel reads a persisted registry.Model from path.
func loadModel(path string) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeforge: reading model %s: %w", path, err)
	}
	model := registry.NewModel()
	if err := json.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("typeforge: parsing model %s: %w", path, err)
	}
	return registry.Wrap(model), nil
}

// saveModel writes reg's Model as indented JSON to path.
func saveModel(path string, reg *registry.Registry) error {
	data, err := json.MarshalIndent(reg.Model(), "", "  ")
	if err != nil {
		return fmt.Errorf("typeforge: encoding model: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// writeValue persists v as indented JSON to path.
func writeValue(path string, v value.Value) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("typeforge: encoding value: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// readValue loads a single persisted value.Value from path.
func readValue(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, fmt.Errorf("typeforge: reading %s: %w", path, err)
	}
	var v value.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return value.Value{}, fmt.Errorf("typeforge: parsing %s: %w", path, err)
	}
	return v, nil
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-model-config/models"
)

// fileConfig is the on-disk layout of a JSON or YAML config file.
//
// Parameters are a list rather than a map so that a file naming the same
// parameter twice reaches the duplicate check instead of being silently
// collapsed by the decoder.
type fileConfig struct {
	App        App             `json:"app" yaml:"app"`
	Parameters []fileParameter `json:"parameters" yaml:"parameters"`
}

type fileParameter struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// parseFile reads a config file and returns it as a [StructuredConfig].
// The format is picked from the extension: .json, .yaml or .yml.
// Unknown fields are rejected. An empty file yields an empty config.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(f)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		err = dec.Decode(&fc)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	params := make([]models.Parameter, 0, len(fc.Parameters))
	for i, fp := range fc.Parameters {
		if fp.Value == nil {
			return nil, fmt.Errorf("%w: %s: parameter at index %d (%s) has no value",
				ErrInvalidModelParameter, path, i, fp.Name)
		}

		p, err := models.ParseParameter(fp.Name, fmt.Sprint(fp.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: parameter at index %d: %w", ErrInvalidModelParameter, path, i, err)
		}
		params = append(params, p)
	}

	return &StructuredConfig{
		App:         fc.App,
		ModelLayers: layerOf(SourceFile+":"+path, params),
	}, nil
}

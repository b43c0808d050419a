package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// CalculationFile is the parsed content of an input file. A file holds either a
// single calculation at the top level or a list under "calculations".
type CalculationFile struct {
	Calculations []domain.Envelope
}

type yamlEnvelope struct {
	Kind   string    `yaml:"kind"`
	Name   string    `yaml:"name"`
	Inputs yaml.Node `yaml:"inputs"`
}

type yamlFile struct {
	Kind         string         `yaml:"kind"`
	Name         string         `yaml:"name"`
	Inputs       yaml.Node      `yaml:"inputs"`
	Calculations []yamlEnvelope `yaml:"calculations"`
}

type tomlEnvelope struct {
	Kind   string         `toml:"kind"`
	Name   string         `toml:"name"`
	Inputs toml.Primitive `toml:"inputs"`
}

type tomlFile struct {
	Kind         string         `toml:"kind"`
	Name         string         `toml:"name"`
	Inputs       toml.Primitive `toml:"inputs"`
	Calculations []tomlEnvelope `toml:"calculations"`
}

// InputParser handles parsing of calculation input files
type InputParser struct {
	engine *calculation.Engine
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{engine: calculation.NewEngine()}
}

// LoadFromFile loads calculations from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*CalculationFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file *CalculationFile
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		file, err = ip.ParseTOML(data)
	default:
		file, err = ip.ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateFile(file); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return file, nil
}

// ParseYAML decodes a YAML or JSON document
func (ip *InputParser) ParseYAML(data []byte) (*CalculationFile, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	entries := raw.Calculations
	if raw.Kind != "" {
		top := yamlEnvelope{Kind: raw.Kind, Name: raw.Name, Inputs: raw.Inputs}
		entries = append([]yamlEnvelope{top}, entries...)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no calculations found")
	}

	file := &CalculationFile{}
	for i, entry := range entries {
		node := entry.Inputs
		env, err := buildEnvelope(entry.Kind, entry.Name, func(v any) error {
			if node.Kind == 0 {
				return nil
			}
			return node.Decode(v)
		})
		if err != nil {
			return nil, fmt.Errorf("calculation %d: %w", i, err)
		}
		file.Calculations = append(file.Calculations, env)
	}
	return file, nil
}

// ParseTOML decodes a TOML document
func (ip *InputParser) ParseTOML(data []byte) (*CalculationFile, error) {
	var raw tomlFile
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	file := &CalculationFile{}
	if raw.Kind != "" {
		env, err := buildEnvelope(raw.Kind, raw.Name, func(v any) error {
			if !md.IsDefined("inputs") {
				return nil
			}
			return md.PrimitiveDecode(raw.Inputs, v)
		})
		if err != nil {
			return nil, fmt.Errorf("calculation 0: %w", err)
		}
		file.Calculations = append(file.Calculations, env)
	}
	for i, entry := range raw.Calculations {
		prim := entry.Inputs
		env, err := buildEnvelope(entry.Kind, entry.Name, func(v any) error {
			return md.PrimitiveDecode(prim, v)
		})
		if err != nil {
			return nil, fmt.Errorf("calculation %d: %w", len(file.Calculations)+i, err)
		}
		file.Calculations = append(file.Calculations, env)
	}
	if len(file.Calculations) == 0 {
		return nil, fmt.Errorf("no calculations found")
	}
	return file, nil
}

func buildEnvelope(kindName, name string, decode func(any) error) (domain.Envelope, error) {
	if kindName == "" {
		return domain.Envelope{}, fmt.Errorf("kind is required")
	}
	kind, err := domain.ParseKind(kindName)
	if err != nil {
		return domain.Envelope{}, err
	}
	in, err := domain.DecodeInput(kind, decode)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("failed to decode %s inputs: %w", kind, err)
	}
	return domain.NewEnvelope(name, in), nil
}

// ValidateFile checks every calculation against its input domain
func (ip *InputParser) ValidateFile(file *CalculationFile) error {
	for i, env := range file.Calculations {
		if err := ip.engine.Validate(env.Input); err != nil {
			label := env.Name
			if label == "" {
				label = env.Kind.Title()
			}
			return fmt.Errorf("calculation %d (%s) validation failed: %w", i, label, err)
		}
	}
	return nil
}

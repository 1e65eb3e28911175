package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrNoScript is returned by Load when no path is given.
var ErrNoScript = errors.New("demo script path is required")

//go:embed builtin/rentflow.toml
var builtinScript []byte

const defaultTitle = "Demo"

// embedded serves in-memory TOML to koanf.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) { return e, nil }

func (e embedded) Read() (map[string]any, error) {
	return nil, errors.New("embedded provider requires a parser")
}

// Builtin returns the walkthrough bundled with the dashboard.
func Builtin() (*Script, error) {
	s, err := parse(embedded(builtinScript))
	if err != nil {
		return nil, fmt.Errorf("parse builtin script: %w", err)
	}
	s.Source = "builtin"
	return s, nil
}

// Load reads a walkthrough from a TOML file.
func Load(path string) (*Script, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoScript
	}
	s, err := parse(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// LoadOrBuiltin loads path when set, the bundled script otherwise.
func LoadOrBuiltin(path string) (*Script, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin()
	}
	return Load(path)
}

func parse(p koanf.Provider) (*Script, error) {
	k := koanf.New(".")
	if err := k.Load(p, toml.Parser()); err != nil {
		return nil, err
	}

	var s Script
	if err := k.Unmarshal("", &s); err != nil {
		return nil, err
	}
	if err := normalize(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func normalize(s *Script) error {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		s.Title = defaultTitle
	}
	s.Subtitle = strings.TrimSpace(s.Subtitle)
	s.IdleHint = strings.TrimSpace(s.IdleHint)
	s.CompleteTitle = strings.TrimSpace(s.CompleteTitle)
	s.CompleteNote = strings.TrimSpace(s.CompleteNote)

	for i := range s.Steps {
		step := &s.Steps[i]
		step.Title = strings.TrimSpace(step.Title)
		step.Description = strings.TrimSpace(step.Description)
		step.Group = strings.TrimSpace(step.Group)
		step.ResultTitle = strings.TrimSpace(step.ResultTitle)

		if step.Title == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
		if step.DurationMs < 0 {
			return fmt.Errorf("step %d: duration_ms must not be negative", i+1)
		}
		if step.ID == 0 {
			step.ID = i + 1
		}
	}

	for i := range s.Metrics {
		if strings.TrimSpace(s.Metrics[i].Label) == "" {
			return fmt.Errorf("metric %d: label is required", i+1)
		}
	}
	return nil
}

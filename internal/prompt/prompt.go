// Package prompt builds the chat messages sent to the model
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Template holds the system persona and the user message wrapper
type Template struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`

	user *template.Template
}

// Load reads a YAML template file. Missing fields fall back to the defaults.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read prompt file %q: %w", path, err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("parse prompt file %q: %w", path, err)
	}
	if strings.TrimSpace(t.System) == "" {
		t.System = DefaultSystem
	}
	if strings.TrimSpace(t.User) == "" {
		t.User = DefaultUser
	}
	if err := t.compile(); err != nil {
		return Template{}, fmt.Errorf("prompt file %q: %w", path, err)
	}
	return t, nil
}

// LoadOrDefault loads the template at path, or the default when path is empty
// or the file cannot be used.
func LoadOrDefault(path string, logger zerolog.Logger) Template {
	if path == "" {
		t := Default()
		_ = t.compile()
		return t
	}

	t, err := Load(path)
	if err != nil {
		logger.Warn().Err(err).Msg("using default prompt instead")
		t = Default()
		_ = t.compile()
	}
	return t
}

func (t *Template) compile() error {
	tmpl, err := template.New("user").Option("missingkey=error").Parse(t.User)
	if err != nil {
		return fmt.Errorf("parse user template: %w", err)
	}
	t.user = tmpl
	return nil
}

// UserMessage renders the user message for a raw prompt
func (t Template) UserMessage(prompt string) (string, error) {
	if t.user == nil {
		if err := t.compile(); err != nil {
			return "", err
		}
	}
	var buf bytes.Buffer
	if err := t.user.Execute(&buf, struct{ Prompt string }{Prompt: prompt}); err != nil {
		return "", fmt.Errorf("render user message: %w", err)
	}
	out := buf.String()
	if strings.TrimSpace(out) == "" {
		return "", errors.New("user template rendered empty message")
	}
	return out, nil
}

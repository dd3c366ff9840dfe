package world

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"
)

// Describer produces narration from the current session state. Descriptions
// are evaluated on every call, never cached.
type Describer interface {
	Describe(s State) string
}

// DescribeFunc adapts a function to Describer.
type DescribeFunc func(s State) string

func (f DescribeFunc) Describe(s State) string { return f(s) }

// Text is a Describer that ignores state.
type Text string

func (t Text) Describe(State) string { return string(t) }

// checker is implemented by describers that can fail at evaluation time.
// New probes them once so a broken world is rejected at load time.
type checker interface {
	check(s State) error
}

type templateDescriber struct {
	tmpl *template.Template
}

// Template compiles a text/template describer. The template's dot is the
// State, so it can branch on {{.Location}}, {{.Won}} or {{.Holding "item"}}.
func Template(name, text string) (Describer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return &templateDescriber{tmpl: tmpl}, nil
}

func (d *templateDescriber) Describe(s State) string {
	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, s); err != nil {
		slog.Warn("description template failed", "template", d.tmpl.Name(), "error", err)
	}
	return buf.String()
}

func (d *templateDescriber) check(s State) error {
	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, s); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplate, d.tmpl.Name(), err)
	}
	return nil
}

// probe is the state used to check templates at construction time.
type probe struct {
	room string
}

func (p probe) Location() string    { return p.room }
func (p probe) Holding(string) bool { return false }
func (p probe) Won() bool           { return false }

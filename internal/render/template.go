package render

import (
	"fmt"
	"slices"
)

// Kind identifies one of the artifacts generated from a template.
type Kind string

const (
	KindCompose    Kind = "compose"
	KindDockerfile Kind = "dockerfile"
	KindWebServer  Kind = "web_server"
	KindEnv        Kind = "env"
)

// Template describes a templated artifact and the closed set of placeholders it accepts.
type Template struct {
	Kind Kind
	// File is the template's name among the embedded defaults.
	File         string
	placeholders []Placeholder
}

var (
	Compose = Template{
		Kind: KindCompose,
		File: "docker-compose.yml.tmpl",
		placeholders: []Placeholder{
			WorkingDir, AppExternalPort, MysqlExternalPort, MysqlDatabase, MysqlRootPassword,
		},
	}
	Dockerfile = Template{
		Kind:         KindDockerfile,
		File:         "Dockerfile.tmpl",
		placeholders: []Placeholder{WorkingDir},
	}
	// WebServer is copied verbatim.
	WebServer = Template{
		Kind: KindWebServer,
		File: "nginx.conf.tmpl",
	}
	Env = Template{
		Kind:         KindEnv,
		File:         "env.tmpl",
		placeholders: []Placeholder{DBName, MysqlPassword},
	}
)

// Placeholders returns the template's declared placeholders.
func (t Template) Placeholders() []Placeholder {
	return slices.Clone(t.placeholders)
}

// Accepts reports whether p belongs to the template's placeholder set.
func (t Template) Accepts(p Placeholder) bool {
	return slices.Contains(t.placeholders, p)
}

// Bind turns values into bindings ordered as the template declares them.
// A value for a placeholder outside the set is an error; a declared placeholder
// without a value is simply not bound.
func (t Template) Bind(values map[Placeholder]string) ([]Binding, error) {
	for p := range values {
		if !t.Accepts(p) {
			return nil, &UnknownPlaceholderError{Template: t.Kind, Placeholder: p}
		}
	}
	bindings := make([]Binding, 0, len(values))
	for _, p := range t.placeholders {
		if v, ok := values[p]; ok {
			bindings = append(bindings, Binding{Placeholder: p, Value: v})
		}
	}
	return bindings, nil
}

// Analysis lists the mismatches between a template text and its bindings.
type Analysis struct {
	// Missing holds declared placeholders that the text never references.
	Missing []Placeholder
	// Unresolved holds placeholders referenced by the text that have no binding.
	Unresolved []Placeholder
}

// Clean reports whether text and bindings line up exactly.
func (a Analysis) Clean() bool {
	return len(a.Missing) == 0 && len(a.Unresolved) == 0
}

func (a Analysis) String() string {
	return fmt.Sprintf("missing=%v unresolved=%v", a.Missing, a.Unresolved)
}

// Analyze compares text against the declared placeholder set and bindings.
func (t Template) Analyze(text string, bindings []Binding) Analysis {
	used := Tokens(text)

	var a Analysis
	for _, p := range t.placeholders {
		if !slices.Contains(used, p) {
			a.Missing = append(a.Missing, p)
		}
	}
	for _, p := range used {
		bound := slices.ContainsFunc(bindings, func(b Binding) bool { return b.Placeholder == p })
		if !bound {
			a.Unresolved = append(a.Unresolved, p)
		}
	}
	return a
}

// UnknownPlaceholderError is returned when a value is bound to a placeholder the template does not declare.
type UnknownPlaceholderError struct {
	Template    Kind
	Placeholder Placeholder
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("template %s has no placeholder %q", e.Template, e.Placeholder)
}

func (e *UnknownPlaceholderError) InvalidInput() bool {
	return true
}

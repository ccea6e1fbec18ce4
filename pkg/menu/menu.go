// Package menu is an extensible wrapper around dmenu and compatible forks.
// It translates named options into command line flags, runs the tool as a
// subprocess with the candidate items on stdin, and returns the selection.
// New options can be registered at runtime without touching the core logic.
package menu

import (
	"fmt"
	"log/slog"
	"strings"
)

// Setting е присвояване на стойност към именувана опция
type Setting struct {
	Name  string
	Value any
}

// Opt constructs a Setting. Call-site order of settings determines flag
// order in the rendered argument list.
func Opt(name string, value any) Setting {
	return Setting{Name: name, Value: value}
}

// Menu binds a tool variant to an option registry and a set of default
// settings. The zero value is not usable; use New.
type Menu struct {
	variant  Variant
	registry *Registry
	defaults []Setting
	run      ProcRunner
}

var builtinRegistry = DefaultRegistry()

// New създава Menu за дадения variant с опционални default настройки.
// Defaults се рендират преди per-call настройките и могат да бъдат
// override-нати по име при всяко извикване.
func New(variant Variant, defaults ...Setting) *Menu {
	return &Menu{
		variant:  variant,
		registry: builtinRegistry.Clone(),
		defaults: append([]Setting{}, defaults...),
		run:      RunProcess,
	}
}

// NewByName създава Menu по име на variant
func NewByName(name string, defaults ...Setting) (*Menu, error) {
	v, err := LookupVariant(name)
	if err != nil {
		return nil, err
	}
	return New(v, defaults...), nil
}

// Variant връща varianta на менюто
func (m *Menu) Variant() Variant {
	return m.variant
}

// Register extends the menu with a new named option, or overrides the
// rendering of an existing one.
func (m *Menu) Register(name string, conv Converter) {
	m.registry.Register(name, conv)
}

// UseRunner подменя process runner-а. Полезно за тестове.
func (m *Menu) UseRunner(run ProcRunner) {
	m.run = run
}

// BuildArgs renders the option tokens for one invocation. Defaults come
// first in configured order; per-call settings override same-name defaults
// in place and append otherwise. Unknown option names fail with
// ErrUnsupportedOption.
func (m *Menu) BuildArgs(settings ...Setting) ([]string, error) {
	merged := mergeSettings(m.defaults, settings)

	args := []string{}
	for _, s := range merged {
		conv, ok := m.registry.Lookup(s.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedOption, s.Name)
		}
		tokens, err := conv(s.Value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", s.Name, err)
		}
		args = append(args, tokens...)
	}
	return args, nil
}

// Pick shows the menu with the given items and returns the selected line.
// A cancelled menu (tool exited with one of the variant's cancel codes)
// returns an empty string and no error. One invocation, one attempt - the
// call blocks until the tool exits.
func (m *Menu) Pick(items []string, settings ...Setting) (string, error) {
	opts, err := m.BuildArgs(settings...)
	if err != nil {
		return "", err
	}

	argv := append([]string{}, m.variant.ExtraArgs...)
	argv = append(argv, opts...)

	slog.Debug("running menu tool",
		"variant", m.variant.Name,
		"exe", m.variant.Executable,
		"args", argv,
		"items", len(items))

	res, err := m.run(m.variant.Executable, argv, strings.Join(items, "\n"))
	if err != nil {
		return "", err
	}

	if res.ExitCode != 0 {
		if m.variant.Cancelled(res.ExitCode) {
			return "", nil
		}
		return "", &ToolError{
			Tool:     m.variant.Name,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}

	return strings.TrimSpace(res.Stdout), nil
}

// Version връща version string-а на инсталираната програма
func (m *Menu) Version() (string, error) {
	res, err := m.run(m.variant.Executable, []string{"-v"}, "")
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		// some forks print the version on stderr
		out = strings.TrimSpace(res.Stderr)
	}
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return out, nil
}

// Pick е удобна функция за еднократно извикване с default dmenu variant
func Pick(items []string, settings ...Setting) (string, error) {
	v, err := LookupVariant("dmenu")
	if err != nil {
		return "", err
	}
	return New(v).Pick(items, settings...)
}

func mergeSettings(defaults, overrides []Setting) []Setting {
	merged := append([]Setting{}, defaults...)
	for _, s := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Name == s.Name {
				merged[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, s)
		}
	}
	return merged
}

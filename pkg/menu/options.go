package menu

import (
	"fmt"
	"strconv"
)

// Converter превръща стойност на опция в command line токени
type Converter func(value any) ([]string, error)

// Registry maps logical option names to converters. Iteration follows
// registration order, so rendered flags are stable across runs.
type Registry struct {
	names      []string
	converters map[string]Converter
}

// NewRegistry създава празен registry
func NewRegistry() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// Register adds or overrides a rule for the given option name.
func (r *Registry) Register(name string, conv Converter) {
	if _, exists := r.converters[name]; !exists {
		r.names = append(r.names, name)
	}
	r.converters[name] = conv
}

// Lookup връща converter по име на опция
func (r *Registry) Lookup(name string) (Converter, bool) {
	conv, ok := r.converters[name]
	return conv, ok
}

// Names returns the registered option names in registration order.
func (r *Registry) Names() []string {
	return append([]string{}, r.names...)
}

// Clone returns an independent copy so a Menu can extend its registry
// without mutating the shared defaults.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for _, name := range r.names {
		clone.Register(name, r.converters[name])
	}
	return clone
}

// Flag renders a boolean option as a single token. A nil or false value
// suppresses the flag entirely.
func Flag(token string) Converter {
	return func(value any) ([]string, error) {
		if value == nil {
			return nil, nil
		}
		on, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", value)
		}
		if !on {
			return nil, nil
		}
		return []string{token}, nil
	}
}

// IntOpt renders an integer-valued option as flag + number.
func IntOpt(token string) Converter {
	return func(value any) ([]string, error) {
		if value == nil {
			return nil, nil
		}
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}
		return []string{token, strconv.Itoa(n)}, nil
	}
}

// StringOpt renders a string-valued option as flag + value.
func StringOpt(token string) Converter {
	return func(value any) ([]string, error) {
		if value == nil {
			return nil, nil
		}
		return []string{token, fmt.Sprintf("%v", value)}, nil
	}
}

// FloatOpt renders a float-valued option as flag + number.
func FloatOpt(token string) Converter {
	return func(value any) ([]string, error) {
		if value == nil {
			return nil, nil
		}
		f, err := toFloat(value)
		if err != nil {
			return nil, err
		}
		return []string{token, strconv.FormatFloat(f, 'g', -1, 64)}, nil
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", value)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", value)
	}
}

// DefaultRegistry returns the option set understood by stock dmenu plus the
// widely used dmenu2 patches. Forks ignore or reject flags they do not
// implement, so callers targeting a specific fork should only pass options
// it supports.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Stock dmenu
	r.Register("bottom", Flag("-b"))
	r.Register("grab", Flag("-f"))
	r.Register("insensitive", Flag("-i"))
	r.Register("lines", IntOpt("-l"))
	r.Register("monitor", IntOpt("-m"))
	r.Register("prompt", StringOpt("-p"))
	r.Register("font", StringOpt("-fn"))
	r.Register("normal_bg", StringOpt("-nb"))
	r.Register("normal_fg", StringOpt("-nf"))
	r.Register("selected_bg", StringOpt("-sb"))
	r.Register("selected_fg", StringOpt("-sf"))
	r.Register("windowid", StringOpt("-w"))

	// dmenu2 patches
	r.Register("filter", Flag("-r"))
	r.Register("fuzzy", Flag("-z"))
	r.Register("token", Flag("-t"))
	r.Register("mask", Flag("-mask"))
	r.Register("screen", IntOpt("-s"))
	r.Register("window_name", StringOpt("-name"))
	r.Register("window_class", StringOpt("-class"))
	r.Register("opacity", FloatOpt("-o"))
	r.Register("dim", FloatOpt("-dim"))
	r.Register("dim_color", StringOpt("-dc"))
	r.Register("height", IntOpt("-h"))
	r.Register("xoffset", IntOpt("-x"))
	r.Register("yoffset", IntOpt("-y"))
	r.Register("width", IntOpt("-width"))

	return r
}

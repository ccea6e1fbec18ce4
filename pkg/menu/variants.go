package menu

import "fmt"

// Variant describes one dmenu-compatible tool: which executable to spawn,
// the extra argv needed to put it in dmenu mode, and which exit codes mean
// "the user cancelled" rather than "the tool failed". Forks disagree on
// the cancel convention, so it is data, not code.
type Variant struct {
	Name            string
	Executable      string
	ExtraArgs       []string
	CancelExitCodes []int
}

// Cancelled проверява дали exit code-ът означава отказ от потребителя
func (v Variant) Cancelled(code int) bool {
	for _, c := range v.CancelExitCodes {
		if c == code {
			return true
		}
	}
	return false
}

// IsAvailable проверява дали програмата на varianta е инсталирана
func (v Variant) IsAvailable() bool {
	return Available(v.Executable)
}

var variants = make(map[string]Variant)

// detectPriority определя реда за auto-detect
var detectPriority = []string{"dmenu", "rofi", "bemenu", "fuzzel", "wmenu"}

func init() {
	RegisterVariant(Variant{
		Name:            "dmenu",
		Executable:      "dmenu",
		CancelExitCodes: []int{1},
	})
	RegisterVariant(Variant{
		Name:            "rofi",
		Executable:      "rofi",
		ExtraArgs:       []string{"-dmenu"},
		CancelExitCodes: []int{1},
	})
	RegisterVariant(Variant{
		Name:            "bemenu",
		Executable:      "bemenu",
		CancelExitCodes: []int{1},
	})
	RegisterVariant(Variant{
		Name:            "fuzzel",
		Executable:      "fuzzel",
		ExtraArgs:       []string{"--dmenu"},
		CancelExitCodes: []int{2},
	})
	RegisterVariant(Variant{
		Name:            "wmenu",
		Executable:      "wmenu",
		CancelExitCodes: []int{1},
	})
}

// RegisterVariant добавя variant в registry
func RegisterVariant(v Variant) {
	variants[v.Name] = v
}

// LookupVariant връща variant по име
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return v, nil
}

// Variants връща имената на всички регистрирани variants
func Variants() []string {
	var names []string
	for _, name := range detectPriority {
		if _, ok := variants[name]; ok {
			names = append(names, name)
		}
	}
	for name := range variants {
		if !contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// DetectAvailable намира първия наличен variant
func DetectAvailable() (Variant, bool) {
	for _, name := range detectPriority {
		if v, ok := variants[name]; ok && v.IsAvailable() {
			return v, true
		}
	}
	return Variant{}, false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedOption се връща при опция, която не е регистрирана
	ErrUnsupportedOption = errors.New("unsupported option")

	// ErrExecutableNotFound се връща когато menu програмата липсва от PATH
	ErrExecutableNotFound = errors.New("menu executable not found")

	// ErrUnknownVariant се връща при непознато име на variant
	ErrUnknownVariant = errors.New("unknown menu variant")
)

// ToolError reports a menu tool run that exited with a status outside the
// variant's documented cancel codes. Stderr carries whatever the tool wrote.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// IsUnsupportedOption проверява дали грешката е от непозната опция
func IsUnsupportedOption(err error) bool {
	return errors.Is(err, ErrUnsupportedOption)
}

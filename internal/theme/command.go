package theme

import (
	"fmt"
	"strings"
)

type CommandFunc = func(args []string) error

// ThemeAPI is the slice of the editor API the theme commands need.
type ThemeAPI interface {
	GetTheme() *Theme
	SetTheme(name string) error
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
}

// Commands returns the :theme and :themes command handlers bound to api.
func Commands(api ThemeAPI) map[string]CommandFunc {
	return map[string]CommandFunc{
		"theme": func(args []string) error {
			if len(args) == 0 {
				api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
				return nil
			}
			name := strings.Join(args, " ")
			if err := api.SetTheme(name); err != nil {
				return fmt.Errorf("%w. Available: %s", err, strings.Join(api.ListThemes(), ", "))
			}
			api.SetStatusMessage("Theme set to: %s", api.GetTheme().Name)
			return nil
		},
		"themes": func(args []string) error {
			api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
			return nil
		},
	}
}

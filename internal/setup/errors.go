package setup

import "fmt"

// MissingSettingError names the environment variable a component could not
// start without.
type MissingSettingError struct {
	Component string
	Variable  string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s: environment variable %q not set", e.Component, e.Variable)
}

func missingSetting(component, variable string) error {
	return &MissingSettingError{Component: component, Variable: variable}
}

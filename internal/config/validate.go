package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const allOrNothingTag = "allOrNothing"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(allOrNothingTag, allOrNothing)
	return v
}

// fieldList splits "A,B,C" or "A B C".
func fieldList(param string) []string {
	return strings.FieldsFunc(param, func(r rune) bool { return r == ',' || r == ' ' })
}

// allOrNothing is attached to a placeholder field and checks the sibling
// fields named in its parameter: they must be all zero or all set. Nil
// pointers and interfaces count as zero. An unknown field name fails the
// check so that a typo in a tag cannot pass silently.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := fieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	set := 0
	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}
		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}
		if !f.IsZero() {
			set++
		}
	}
	return set == 0 || set == len(names)
}

// formatValidationError turns an allOrNothing failure into a message naming
// the section and its fields, e.g. "S3 configuration is incomplete".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() != allOrNothingTag {
			continue
		}
		// "Config.S3.Validate" -> "S3"
		parts := strings.Split(e.Namespace(), ".")
		section := "Config"
		if len(parts) >= 2 {
			section = parts[len(parts)-2]
		}
		return fmt.Errorf(
			"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
			section, strings.Join(fieldList(e.Param()), ", "))
	}
	return err
}

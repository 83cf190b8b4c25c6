package dictionary

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/TURKZEN/english-turkish-dictionary/internal/validation"
)

// Entry is a single dictionary record.
//
// Category is nil when the record has no category. A non-nil pointer to an
// empty string means the category was given explicitly as "".
type Entry struct {
	Word        string  `json:"word" yaml:"word" validate:"required"`
	Category    *string `json:"category,omitempty" yaml:"category,omitempty"`
	EntryType   string  `json:"type" yaml:"type" validate:"required"`
	Translation string  `json:"tr" yaml:"tr" validate:"required"`
}

// HasCategory reports whether the entry carries a category.
func (e Entry) HasCategory() bool {
	return e.Category != nil
}

// CategoryOrDefault returns the category, or placeholder when it is absent.
func (e Entry) CategoryOrDefault(placeholder string) string {
	if e.Category == nil {
		return placeholder
	}
	return *e.Category
}

// entryValidator checks the required fields of decoded entries and renders
// failures with the wire key names, e.g. "tr is a required field".
type entryValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newEntryValidator() (*entryValidator, error) {
	validate, trans, err := validation.New("json")
	if err != nil {
		return nil, fmt.Errorf("validation.New > %w", err)
	}
	return &entryValidator{
		validate:   validate,
		translator: trans,
	}, nil
}

func (v *entryValidator) check(entry Entry) error {
	err := v.validate.Struct(entry)
	if err == nil {
		return nil
	}

	messages, err := validation.Messages(err, v.translator, func(e validator.FieldError, message string) string {
		return message
	})
	if err != nil {
		return err
	}
	return errors.New(strings.Join(messages, ", "))
}

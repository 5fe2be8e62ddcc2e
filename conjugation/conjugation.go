package conjugation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// errors
	UnsupportedKindError error = errors.New("conjugation: unsupported conjugation kind")
	UnsupportedFormError error = errors.New("conjugation: form is not defined for conjugation kind")
	SurfaceMismatchError error = errors.New("conjugation: surface does not end with the expected inflection")
)

// Kind is an inflection family as reported by the analyzer, e.g. "形容詞・アウオ段" or "五段・マ行".
type Kind string

// NoKind marks morphemes that do not inflect.
const NoKind Kind = "*"

type Conjugation struct {
	Kind Kind
	Form Form
}

type ConversionError struct {
	Surface string
	Kind    Kind
	From    Form
	To      Form
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q (%s) from %s to %s: %v", e.Surface, e.Kind, e.From.Name(), e.To.Name(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Convert re-inflects surface, currently in form from, into form to.
// Converting a form into itself always succeeds and returns surface unchanged.
func Convert(surface string, kind Kind, from Form, to Form) (string, error) {
	if from == to {
		return surface, nil
	}

	fail := func(err error) (string, error) {
		return "", &ConversionError{Surface: surface, Kind: kind, From: from, To: to, Err: err}
	}

	p, ok := lookupParadigm(kind)
	if !ok {
		return fail(UnsupportedKindError)
	}

	fromEnding, ok := p[from]
	if !ok {
		return fail(UnsupportedFormError)
	}
	toEnding, ok := p[to]
	if !ok {
		return fail(UnsupportedFormError)
	}

	if surface == "" || !strings.HasSuffix(surface, fromEnding) {
		return fail(SurfaceMismatchError)
	}
	stem := strings.TrimSuffix(surface, fromEnding)

	return stem + toEnding, nil
}

// Supports reports whether Convert knows the paradigm of kind.
func Supports(kind Kind) bool {
	_, ok := lookupParadigm(kind)
	return ok
}

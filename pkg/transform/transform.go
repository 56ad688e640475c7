// Package transform provides named string transformers applied to
// stack elements by the demo surfaces.
package transform

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Transformer func(string) (string, error)

var BuiltinTransformers = map[string]Transformer{
	"lowercase":      Lowercase,
	"uppercase":      Uppercase,
	"capitalize":     Capitalize,
	"title":          TitleCase,
	"trim":           Trim,
	"reverse":        ReverseRunes,
	"no-punctuation": RemovePunctuation,
}

func ListBuiltins() []string {
	names := make([]string, 0, len(BuiltinTransformers))
	for name := range BuiltinTransformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a builtin transformer by name.
func Lookup(name string) (Transformer, error) {
	transformer, ok := BuiltinTransformers[name]
	if !ok {
		return nil, fmt.Errorf("unknown transformer %q (available: %s)", name, strings.Join(ListBuiltins(), ", "))
	}
	return transformer, nil
}

func Lowercase(s string) (string, error) {
	return strings.ToLower(s), nil
}

func Uppercase(s string) (string, error) {
	return strings.ToUpper(s), nil
}

func Trim(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func Capitalize(s string) (string, error) {
	if len(s) == 0 {
		return s, nil
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), nil
}

func TitleCase(s string) (string, error) {
	caser := cases.Title(language.English)
	return caser.String(s), nil
}

func ReverseRunes(s string) (string, error) {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

func RemovePunctuation(s string) (string, error) {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s), nil
}

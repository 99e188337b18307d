// Package check implements the validation kernel shared by the automaton and
// grammar packages: categorized construction errors that name every offending
// member, alphabet and input-string checks, and fresh-name allocation.
package check

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/machina-dev/machina/sets"
)

// Error is a structural defect found during construction or input checking.
// Cause identifies the violated invariant and Members lists every offending
// element of that category, in lexicographic order.
type Error struct {
	Cause    error
	Members  []string
	singular string
	plural   string
}

func (e *Error) Error() string {
	quoted := make([]string, len(e.Members))
	for i, m := range e.Members {
		quoted[i] = fmt.Sprintf("'%v'", m)
	}
	if len(quoted) == 1 {
		return fmt.Sprintf(e.singular, quoted[0])
	}
	return fmt.Sprintf(e.plural, strings.Join(quoted, ", "))
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns nil when bad is empty. Otherwise it returns an *Error wrapping
// cause, whose message is singular or plural formatted with the quoted
// members. singular must contain one %v verb taking the sole member; plural
// one %v verb taking the comma-joined member list.
func New(cause error, bad sets.Set, singular, plural string) error {
	if bad.Empty() {
		return nil
	}
	return &Error{
		Cause:    cause,
		Members:  bad.Members(),
		singular: singular,
		plural:   plural,
	}
}

// Alphabet reports the members of alphabet that are not single-character
// strings. name distinguishes the alphabet in the message ("alphabet",
// "input alphabet", "output alphabet").
func Alphabet(cause error, alphabet sets.Set, name string) error {
	bad := sets.New()
	for sym := range alphabet {
		if utf8.RuneCountInString(sym) != 1 {
			bad.Add(sym)
		}
	}
	return New(
		cause,
		bad,
		"symbol %v in the "+name+" is not a single-character string",
		"symbols %v in the "+name+" are not single-character strings",
	)
}

// Input reports the characters of input that are not members of alphabet.
func Input(cause error, input string, alphabet sets.Set) error {
	bad := sets.New()
	for _, r := range input {
		if !alphabet.Contains(string(r)) {
			bad.Add(string(r))
		}
	}
	return New(
		cause,
		bad,
		"symbol %v is not in the alphabet",
		"symbols %v are not in the alphabet",
	)
}

// FreshName returns a name not contained in used: prefix itself if free,
// otherwise prefix followed by the smallest positive counter that makes it
// free. The scheme is deterministic so constructions are reproducible.
func FreshName(used sets.Set, prefix string) string {
	if !used.Contains(prefix) {
		return prefix
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%v%v", prefix, i)
		if !used.Contains(name) {
			return name
		}
	}
}

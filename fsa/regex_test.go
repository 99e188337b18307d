package fsa

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

func TestFit(t *testing.T) {
	tests := []struct {
		caption  string
		regex    string
		alphabet sets.Set
		accepted []string
		rejected []string
	}{
		{
			caption:  "a single symbol",
			regex:    "a",
			alphabet: sets.New("a", "b"),
			accepted: []string{"a"},
			rejected: []string{"", "b", "aa"},
		},
		{
			caption:  "concatenation is implicit",
			regex:    "ab",
			alphabet: sets.New("a", "b"),
			accepted: []string{"ab"},
			rejected: []string{"", "a", "b", "ba", "aba"},
		},
		{
			caption:  "the explicit concatenation operator works too",
			regex:    "a•b",
			alphabet: sets.New("a", "b"),
			accepted: []string{"ab"},
			rejected: []string{"", "ba"},
		},
		{
			caption:  "alternation",
			regex:    "a|b",
			alphabet: sets.New("a", "b"),
			accepted: []string{"a", "b"},
			rejected: []string{"", "ab"},
		},
		{
			caption:  "star binds tighter than concatenation",
			regex:    "ab*",
			alphabet: sets.New("a", "b"),
			accepted: []string{"a", "ab", "abbb"},
			rejected: []string{"", "b", "abab"},
		},
		{
			caption:  "concatenation binds tighter than alternation",
			regex:    "ab|ba",
			alphabet: sets.New("a", "b"),
			accepted: []string{"ab", "ba"},
			rejected: []string{"", "a", "b", "abba"},
		},
		{
			caption:  "a starred group",
			regex:    "(ab)*",
			alphabet: sets.New("a", "b"),
			accepted: []string{"", "ab", "abab", "ababab"},
			rejected: []string{"a", "b", "aba", "abb"},
		},
		{
			caption:  "the empty-string marker accepts only the empty string",
			regex:    "€",
			alphabet: sets.New("a", "b"),
			accepted: []string{""},
			rejected: []string{"a", "b"},
		},
		{
			caption:  "the empty-set marker accepts nothing",
			regex:    "Ø",
			alphabet: sets.New("a", "b"),
			accepted: nil,
			rejected: []string{"", "a", "b"},
		},
		{
			caption:  "the markers concatenate like any atom",
			regex:    "a€b",
			alphabet: sets.New("a", "b"),
			accepted: []string{"ab"},
			rejected: []string{"", "a", "b", "aab"},
		},
		{
			caption:  "alternating with the empty string makes an atom optional",
			regex:    "(a|€)b",
			alphabet: sets.New("a", "b"),
			accepted: []string{"b", "ab"},
			rejected: []string{"", "a", "aab"},
		},
		{
			caption:  "nested groups",
			regex:    "((a|b)(a|b))*",
			alphabet: sets.New("a", "b"),
			accepted: []string{"", "aa", "ab", "ba", "bb", "abba"},
			rejected: []string{"a", "b", "aba"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			n, err := Fit(tt.regex, tt.alphabet)
			if err != nil {
				t.Fatal(err)
			}
			for _, input := range tt.accepted {
				accepted, err := n.Accepts(input)
				if err != nil {
					t.Fatal(err)
				}
				if !accepted {
					t.Fatalf("%#v must be accepted", input)
				}
			}
			for _, input := range tt.rejected {
				accepted, err := n.Accepts(input)
				if err != nil {
					t.Fatal(err)
				}
				if accepted {
					t.Fatalf("%#v must be rejected", input)
				}
			}
		})
	}
}

func TestFit_validation(t *testing.T) {
	alphabet := sets.New("a", "b")

	tests := []struct {
		caption  string
		regex    string
		alphabet sets.Set
		cause    error
		members  []string
	}{
		{
			caption:  "the alphabet cannot contain reserved characters",
			regex:    "a",
			alphabet: sets.New("a", "*", "("),
			cause:    ErrRegexReservedSymbol,
			members:  []string{"(", "*"},
		},
		{
			caption:  "the regex cannot be empty",
			regex:    "",
			alphabet: alphabet,
			cause:    ErrRegexEmpty,
		},
		{
			caption:  "the regex cannot start with an operator",
			regex:    "*a",
			alphabet: alphabet,
			cause:    ErrRegexStartOperator,
			members:  []string{"*"},
		},
		{
			caption:  "every character must be an alphabet symbol or a regex character",
			regex:    "acbd",
			alphabet: alphabet,
			cause:    ErrRegexCharacter,
			members:  []string{"c", "d"},
		},
		{
			caption:  "a binary operator cannot be followed by an operator",
			regex:    "a|*b",
			alphabet: alphabet,
			cause:    ErrRegexOperatorPair,
			members:  []string{"*"},
		},
		{
			caption:  "left parentheses must be matched",
			regex:    "(a(b)",
			alphabet: alphabet,
			cause:    ErrRegexUnbalancedLeft,
		},
		{
			caption:  "right parentheses must be matched",
			regex:    "a)b",
			alphabet: alphabet,
			cause:    ErrRegexUnbalancedRight,
		},
		{
			caption:  "a trailing binary operator lacks an operand",
			regex:    "a|",
			alphabet: alphabet,
			cause:    ErrRegexOperand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Fit(tt.regex, tt.alphabet)
			if !errors.Is(err, tt.cause) {
				t.Fatalf("unexpected error; want: %v, got: %v", tt.cause, err)
			}
			if tt.members == nil {
				return
			}
			var cErr *check.Error
			if !errors.As(err, &cErr) {
				t.Fatalf("error is not a *check.Error: %v", err)
			}
			if diff := cmp.Diff(tt.members, cErr.Members); diff != "" {
				t.Fatalf("unexpected members:\n%v", diff)
			}
		})
	}
}

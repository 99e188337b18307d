package check

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/machina-dev/machina/sets"
)

func TestNew(t *testing.T) {
	cause := errors.New("a category")

	t.Run("an empty member set means no error", func(t *testing.T) {
		if err := New(cause, sets.New(), "bad: %v", "bad: %v"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("a single member uses the singular message", func(t *testing.T) {
		err := New(cause, sets.New("x"), "member %v is bad", "members %v are bad")
		if !errors.Is(err, cause) {
			t.Fatalf("the error must wrap its cause; got: %v", err)
		}
		if err.Error() != "member 'x' is bad" {
			t.Fatalf("unexpected message: %v", err.Error())
		}
	})

	t.Run("several members use the plural message, sorted", func(t *testing.T) {
		err := New(cause, sets.New("z", "x", "y"), "member %v is bad", "members %v are bad")
		if err.Error() != "members 'x', 'y', 'z' are bad" {
			t.Fatalf("unexpected message: %v", err.Error())
		}
		var cErr *Error
		if !errors.As(err, &cErr) {
			t.Fatalf("error is not a *Error: %v", err)
		}
		if diff := cmp.Diff([]string{"x", "y", "z"}, cErr.Members); diff != "" {
			t.Fatalf("unexpected members:\n%v", diff)
		}
	})
}

func TestAlphabet(t *testing.T) {
	cause := errors.New("a category")

	tests := []struct {
		caption  string
		alphabet sets.Set
		members  []string
	}{
		{
			caption:  "single-character symbols pass",
			alphabet: sets.New("a", "0", "€"),
		},
		{
			caption:  "multi-character and empty symbols fail",
			alphabet: sets.New("a", "ab", ""),
			members:  []string{"", "ab"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			err := Alphabet(cause, tt.alphabet, "alphabet")
			if tt.members == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, cause) {
				t.Fatalf("the error must wrap its cause; got: %v", err)
			}
			var cErr *Error
			if !errors.As(err, &cErr) {
				t.Fatalf("error is not a *Error: %v", err)
			}
			if diff := cmp.Diff(tt.members, cErr.Members); diff != "" {
				t.Fatalf("unexpected members:\n%v", diff)
			}
		})
	}
}

func TestInput(t *testing.T) {
	cause := errors.New("a category")
	alphabet := sets.New("0", "1")

	if err := Input(cause, "0110", alphabet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Input(cause, "0a1b", alphabet)
	var cErr *Error
	if !errors.As(err, &cErr) {
		t.Fatalf("error is not a *Error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, cErr.Members); diff != "" {
		t.Fatalf("unexpected members:\n%v", diff)
	}
}

func TestFreshName(t *testing.T) {
	tests := []struct {
		caption string
		used    sets.Set
		prefix  string
		want    string
	}{
		{
			caption: "the prefix itself when free",
			used:    sets.New("a", "b"),
			prefix:  "state",
			want:    "state",
		},
		{
			caption: "the first free counter otherwise",
			used:    sets.New("state", "state1", "state2"),
			prefix:  "state",
			want:    "state3",
		},
		{
			caption: "gaps are filled",
			used:    sets.New("V", "V2"),
			prefix:  "V",
			want:    "V1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := FreshName(tt.used, tt.prefix); got != tt.want {
				t.Fatalf("unexpected name; want: %v, got: %v", tt.want, got)
			}
		})
	}
}

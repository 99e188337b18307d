// Package lexer builds tokenizers out of lexical specifications: an ordered
// list of token kinds with regex patterns. The specification is compiled
// into a DFA-backed scanner by maleeni; earlier entries win ties, longest
// match wins otherwise.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

var (
	ErrNoEntries    = errors.New("a lexical specification needs at least one entry")
	ErrInvalidToken = errors.New("input contains an invalid token")
)

// Entry declares one token kind. When Literal is set, Pattern is taken
// verbatim and its regex metacharacters are escaped. When Skip is set,
// matched tokens are dropped from the output.
type Entry struct {
	Kind    string `json:"kind"`
	Pattern string `json:"pattern"`
	Literal bool   `json:"literal,omitempty"`
	Skip    bool   `json:"skip,omitempty"`
}

// Spec is a lexical specification: the entries in matching-priority order.
type Spec struct {
	Entries []Entry `json:"entries"`
}

// Token is one lexeme of the tokenized input.
type Token struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
}

// Lexer is a compiled lexical specification, ready to tokenize any number
// of inputs.
type Lexer struct {
	clspec *mlspec.CompiledLexSpec
	skip   map[string]bool
}

// Compile translates the specification into a scanner.
func Compile(s *Spec) (*Lexer, error) {
	if len(s.Entries) == 0 {
		return nil, ErrNoEntries
	}
	entries := make([]*mlspec.LexEntry, 0, len(s.Entries))
	skip := map[string]bool{}
	for _, e := range s.Entries {
		pattern := e.Pattern
		if e.Literal {
			pattern = mlspec.EscapePattern(pattern)
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(e.Kind),
			Pattern: mlspec.LexPattern(pattern),
		})
		if e.Skip {
			skip[e.Kind] = true
		}
	}

	clspec, err, cErrs := mlcompiler.Compile(
		&mlspec.LexSpec{Name: "machina", Entries: entries},
		mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax),
	)
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cErr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cErr)
			}
			return nil, fmt.Errorf("%v", b.String())
		}
		return nil, err
	}
	return &Lexer{
		clspec: clspec,
		skip:   skip,
	}, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

// Tokenize scans src into tokens, dropping the kinds marked Skip. It fails
// with ErrInvalidToken when src contains text no entry matches.
func (l *Lexer) Tokenize(src io.Reader) ([]*Token, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(l.clspec), src)
	if err != nil {
		return nil, err
	}
	var tokens []*Token
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return tokens, nil
		}
		if tok.Invalid {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, string(tok.Lexeme))
		}
		kind := string(l.clspec.KindNames[tok.KindID])
		if l.skip[kind] {
			continue
		}
		tokens = append(tokens, &Token{
			Kind:   kind,
			Lexeme: string(tok.Lexeme),
		})
	}
}

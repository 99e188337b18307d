package fsa

import (
	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// The regex mini-language: literals over the caller's alphabet, grouping
// parentheses, alternation '|', Kleene star '*', concatenation (implicit, or
// explicit via '•'), the empty-string marker '€' and the empty-set marker
// 'Ø'. Precedence, tightest first: star, concatenation, alternation.
const concatOperator = '•'

var reservedRegexRunes = []rune{'(', ')', '|', '*', concatOperator, '€', 'Ø'}

func isReservedRegexRune(r rune) bool {
	for _, res := range reservedRegexRunes {
		if r == res {
			return true
		}
	}
	return false
}

func isBinaryOperator(r rune) bool {
	return r == '|' || r == concatOperator
}

func isOperator(r rune) bool {
	return isBinaryOperator(r) || r == '*'
}

func operatorPrecedence(r rune) int {
	if r == concatOperator {
		return 2
	}
	return 1
}

// Fit compiles a regex over the given alphabet into an NFA recognizing the
// same language, using a shunting-yard parse: literals and the nullary
// markers push small atom automata onto a machine stack, and the binary
// operators combine them through Union and Concat as precedence demands.
//
// The reserved characters ( ) | * • € Ø cannot be alphabet symbols; Fit
// fails with ErrRegexReservedSymbol when they are. The regex itself is
// validated before parsing: it must not be empty or start with an operator,
// every character must be an alphabet symbol or reserved, a binary operator
// must not be followed by another operator, and parentheses must balance.
func Fit(regex string, alphabet sets.Set) (*NFA, error) {
	bad := sets.New()
	for _, r := range reservedRegexRunes {
		if alphabet.Contains(string(r)) {
			bad.Add(string(r))
		}
	}
	if err := check.New(
		ErrRegexReservedSymbol,
		bad,
		"alphabet cannot contain character %v",
		"alphabet cannot contain characters %v",
	); err != nil {
		return nil, err
	}

	processed, err := preprocessRegex(regex, alphabet)
	if err != nil {
		return nil, err
	}

	var machines []*NFA
	var operators []rune

	pushMachine := func(m *NFA) {
		machines = append(machines, m)
	}
	binaryOperate := func() error {
		if len(machines) < 2 {
			return ErrRegexOperand
		}
		right := machines[len(machines)-1]
		left := machines[len(machines)-2]
		machines = machines[:len(machines)-2]
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		var combined *NFA
		var err error
		if op == '|' {
			combined, err = left.Union(right)
		} else {
			combined, err = left.Concat(right)
		}
		if err != nil {
			return err
		}
		pushMachine(combined)
		return nil
	}

	for _, r := range processed {
		switch {
		case r == '€' || r == 'Ø':
			m, err := fitEmpty(r, alphabet)
			if err != nil {
				return nil, err
			}
			pushMachine(m)
		case alphabet.Contains(string(r)):
			m, err := fitSymbol(string(r), alphabet)
			if err != nil {
				return nil, err
			}
			pushMachine(m)
		case r == '*':
			if len(machines) == 0 {
				return nil, ErrRegexOperand
			}
			starred, err := machines[len(machines)-1].Star()
			if err != nil {
				return nil, err
			}
			machines[len(machines)-1] = starred
		case isBinaryOperator(r):
			for len(operators) > 0 &&
				operators[len(operators)-1] != '(' &&
				operatorPrecedence(r) <= operatorPrecedence(operators[len(operators)-1]) {
				if err := binaryOperate(); err != nil {
					return nil, err
				}
			}
			operators = append(operators, r)
		case r == '(':
			operators = append(operators, r)
		default: // ')'
			for len(operators) > 0 && operators[len(operators)-1] != '(' {
				if err := binaryOperate(); err != nil {
					return nil, err
				}
			}
			operators = operators[:len(operators)-1]
		}
	}
	for len(operators) > 0 {
		if err := binaryOperate(); err != nil {
			return nil, err
		}
	}
	if len(machines) != 1 {
		return nil, ErrRegexOperand
	}
	return machines[0], nil
}

// preprocessRegex validates the regex and rewrites it with explicit
// concatenation operators: '•' is inserted before every atom or '(' that
// follows something other than '(' or an operator.
func preprocessRegex(regex string, alphabet sets.Set) ([]rune, error) {
	runes := []rune(regex)
	if len(runes) == 0 {
		return nil, ErrRegexEmpty
	}
	if isOperator(runes[0]) {
		return nil, check.New(
			ErrRegexStartOperator,
			sets.New(string(runes[0])),
			"regex cannot start with %v",
			"regex cannot start with %v",
		)
	}
	disallowed := sets.New()
	for _, r := range runes {
		if !alphabet.Contains(string(r)) && !isReservedRegexRune(r) {
			disallowed.Add(string(r))
		}
	}
	if err := check.New(
		ErrRegexCharacter,
		disallowed,
		"regex contains character %v that is not in the alphabet and not a regex character",
		"regex contains characters %v that are not in the alphabet and not regex characters",
	); err != nil {
		return nil, err
	}

	isAtom := func(r rune) bool {
		return alphabet.Contains(string(r)) || r == '€' || r == 'Ø'
	}
	var processed []rune
	depth := 0
	for _, r := range runes {
		if isAtom(r) || r == '(' {
			if len(processed) > 0 {
				last := processed[len(processed)-1]
				if last != '(' && !isBinaryOperator(last) {
					processed = append(processed, concatOperator)
				}
			}
		}
		if isOperator(r) && len(processed) > 0 && isBinaryOperator(processed[len(processed)-1]) {
			return nil, check.New(
				ErrRegexOperatorPair,
				sets.New(string(r)),
				"regex contains a binary operator followed by %v",
				"regex contains a binary operator followed by %v",
			)
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return nil, ErrRegexUnbalancedRight
		}
		processed = append(processed, r)
	}
	if depth > 0 {
		return nil, ErrRegexUnbalancedLeft
	}
	return processed, nil
}

// fitEmpty builds the one-state atom for the nullary markers: accepting for
// '€' (only the empty string), non-accepting for 'Ø' (the empty language).
func fitEmpty(marker rune, alphabet sets.Set) (*NFA, error) {
	tf := map[Move]sets.Set{}
	for sym := range alphabet {
		tf[Move{State: "q1", Symbol: sym}] = sets.New()
	}
	accept := sets.New()
	if marker == '€' {
		accept.Add("q1")
	}
	return NewNFA(tf, "q1", accept)
}

// fitSymbol builds the two-state atom recognizing exactly one symbol.
func fitSymbol(symbol string, alphabet sets.Set) (*NFA, error) {
	tf := map[Move]sets.Set{}
	for sym := range alphabet {
		tf[Move{State: "q1", Symbol: sym}] = sets.New()
		tf[Move{State: "q2", Symbol: sym}] = sets.New()
	}
	tf[Move{State: "q1", Symbol: symbol}] = sets.New("q2")
	return NewNFA(tf, "q1", sets.New("q2"))
}

package fsa

import "errors"

// Construction and input errors. Each one identifies a violated invariant;
// the *check.Error wrapping it lists every offending member.
var (
	ErrStartState   = errors.New("start state is not a member of the state set")
	ErrAcceptStates = errors.New("accept states must be members of the state set")
	ErrAlphabet     = errors.New("alphabet symbols must be single-character strings")
	ErrRange        = errors.New("transition range must be a subset of the state set")
	ErrDomain       = errors.New("transition function is not total over states and alphabet")
	ErrInputSymbol  = errors.New("input contains symbols outside the alphabet")
)

// Regex compilation errors reported by Fit.
var (
	ErrRegexReservedSymbol  = errors.New("alphabet contains reserved regex characters")
	ErrRegexEmpty           = errors.New("regex must not be empty")
	ErrRegexStartOperator   = errors.New("regex cannot start with an operator")
	ErrRegexCharacter       = errors.New("regex contains characters that are neither alphabet symbols nor regex characters")
	ErrRegexOperatorPair    = errors.New("regex contains a binary operator followed by an operator")
	ErrRegexUnbalancedLeft  = errors.New("left parenthesis occurs in regex without matching right parenthesis")
	ErrRegexUnbalancedRight = errors.New("right parenthesis occurs in regex without matching left parenthesis")
	ErrRegexOperand         = errors.New("regex operator lacks an operand")
)

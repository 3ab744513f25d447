package compliance

import "fmt"

// Mode selects how aggressively address parsing rejects ambiguity.
//
// Strict mode accepts only SS58 text addresses, exactly as given.
// Permissive mode trims surrounding whitespace and also accepts a 0x-prefixed
// hex account id in place of an SS58 address.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "permissive" or "strict". The empty string is Permissive.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("compliance: invalid mode %q", s)
	}
}

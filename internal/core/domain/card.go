package domain

import "fmt"

// LuhnChecksum returns the mod-10 Luhn checksum of a digit string.
// A card number is valid when the checksum is zero.
func LuhnChecksum(card string) (int, error) {
	if card == "" {
		return 0, fmt.Errorf("%w: empty card number", ErrValidation)
	}
	sum := 0
	double := false
	for i := len(card) - 1; i >= 0; i-- {
		c := card[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: card number %q contains non-digit characters", ErrValidation, card)
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum % 10, nil
}

// IsLuhnValid reports whether card passes the Luhn check.
func IsLuhnValid(card string) (bool, error) {
	checksum, err := LuhnChecksum(card)
	if err != nil {
		return false, err
	}
	return checksum == 0, nil
}

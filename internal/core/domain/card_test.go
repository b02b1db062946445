package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validCards = []string{
	"4111111111111111",
	"5454545454545454",
	"79927398713",
	"378282246310005",
	"6011111111111117",
	"0000000000000000",
	"0",
}

func TestIsLuhnValid_ValidNumbers(t *testing.T) {
	for _, card := range validCards {
		t.Run(card, func(t *testing.T) {
			valid, err := IsLuhnValid(card)
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}
}

func TestIsLuhnValid_InvalidNumbers(t *testing.T) {
	for _, card := range []string{"1234567890123456", "4111111111111112", "79927398710", "1"} {
		t.Run(card, func(t *testing.T) {
			valid, err := IsLuhnValid(card)
			require.NoError(t, err)
			assert.False(t, valid)
		})
	}
}

// Luhn detects every single-digit substitution.
func TestIsLuhnValid_SingleDigitAlterations(t *testing.T) {
	for _, card := range validCards {
		for pos := 0; pos < len(card); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if card[pos] == d {
					continue
				}
				altered := []byte(card)
				altered[pos] = d

				valid, err := IsLuhnValid(string(altered))
				require.NoError(t, err)
				assert.False(t, valid, "altered %s -> %s", card, altered)
			}
		}
	}
}

func TestLuhnChecksum(t *testing.T) {
	sum, err := LuhnChecksum("79927398710")
	require.NoError(t, err)
	assert.Equal(t, 7, sum)

	sum, err = LuhnChecksum("79927398713")
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}

func TestLuhnChecksum_RejectsNonDigits(t *testing.T) {
	for _, card := range []string{"fail", "4111-1111-1111-1111", "4111.5", " 4111", ""} {
		t.Run(card, func(t *testing.T) {
			_, err := LuhnChecksum(card)
			assert.ErrorIs(t, err, ErrValidation)

			_, err = IsLuhnValid(card)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestIsLuhnValid_LongNumbers(t *testing.T) {
	// Card numbers are never parsed as integers, so length is unbounded.
	card := "00000000000000000000000000000000004111111111111111"
	valid, err := IsLuhnValid(card)
	require.NoError(t, err)
	assert.True(t, valid)
}

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"exit error kept", &ExitError{Code: 7, Message: "x"}, 7},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: ExitUsage, Message: "x"}), ExitUsage},
		{"validation", fmt.Errorf("%w: bad value", domain.ErrValidation), ExitUsage},
		{"unknown command", errors.New(`unknown command "bogus" for "cardledger"`), ExitUsage},
		{"other", errors.New("disk full"), ExitProcessing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireExitCode(t, classify(tt.err), tt.code)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Code: 2, Message: "bad flag"}
	assert.Equal(t, "bad flag", err.Error())
}

func TestRoot_UnknownCommand(t *testing.T) {
	res := execute(t, nil, "bogus")

	exitErr := requireExitCode(t, res.err, ExitUsage)
	assert.Contains(t, exitErr.Message, "--help")
}

func TestRoot_UnknownFlag(t *testing.T) {
	res := execute(t, nil, "run", "--bogus")

	requireExitCode(t, res.err, ExitUsage)
}

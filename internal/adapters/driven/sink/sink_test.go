package sink

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	s.Info("Adding credit card", "name", "Tom")
	s.Warn("Card number is not Luhn valid", "card_number", "1234567890123456")

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg="Adding credit card" name=Tom`)
	assert.Contains(t, out, `level=WARN msg="Card number is not Luhn valid" card_number=1234567890123456`)
}

func TestSlogSink_NilLogger(t *testing.T) {
	s := NewSlogSink(nil)
	assert.NotNil(t, s.log)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard{}.Info("x")
		Discard{}.Warn("y", "k", 1)
	})
}

func TestCounter(t *testing.T) {
	var buf bytes.Buffer
	c := NewCounter(NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil))))

	c.Info("Charging", "name", "Tom")
	c.Warn("Charge declined", "name", "Tom")
	c.Warn("Operation declined", "name", "Quincy")

	assert.Equal(t, 2, c.Warnings())
	assert.Contains(t, buf.String(), "Charging")
	assert.Contains(t, buf.String(), "Operation declined")
}

func TestCounter_NilNext(t *testing.T) {
	c := NewCounter(nil)
	c.Warn("x")
	assert.Equal(t, 1, c.Warnings())
}

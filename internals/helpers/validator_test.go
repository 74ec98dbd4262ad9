package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneRule(t *testing.T) {
	type contact struct {
		Phone string `validate:"phone"`
	}
	v := NewValidator()

	for _, ok := range []string{"5550101", "+15550100", "+12345678901234"} {
		assert.NoError(t, v.Struct(contact{Phone: ok}), ok)
	}
	for _, bad := range []string{"", "555-0101", "123456", "+123456789012345", "call me"} {
		assert.Error(t, v.Struct(contact{Phone: bad}), bad)
	}
}

func TestMaxBytesRule(t *testing.T) {
	type note struct {
		Text string `validate:"maxbytes=6"`
	}
	v := NewValidator()

	assert.NoError(t, v.Struct(note{Text: "abcdef"}))
	assert.NoError(t, v.Struct(note{Text: "日本"}))
	assert.Error(t, v.Struct(note{Text: "abcdefg"}))
	assert.Error(t, v.Struct(note{Text: "日本語"})) // 3 runes, 9 bytes
	assert.Error(t, v.Struct(note{Text: strings.Repeat("é", 4)}))
}

func TestNewValidatorIsRepeatable(t *testing.T) {
	assert.NotPanics(t, func() {
		NewValidator()
		NewValidator()
	})
}

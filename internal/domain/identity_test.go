package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want KeyKind
	}{
		{"mobile phone", "0501234567", KindPhone},
		{"landline phone", "031234567", KindPhone},
		{"short plate", "123456", KindPlate},
		{"long plate", "12345678", KindPlate},
		{"trims whitespace", "  0501234567 ", KindPhone},
		{"plate with leading zero stays plate", "0123456", KindPlate},
		{"too short", "12345", KindInvalid},
		{"too long", "123456789", KindInvalid},
		{"phone too long", "05012345678", KindInvalid},
		{"letters", "abc1234", KindInvalid},
		{"dashed plate", "12-345-67", KindInvalid},
		{"empty", "", KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyKey(tt.in))
		})
	}
}

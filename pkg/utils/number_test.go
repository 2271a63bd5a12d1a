package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in       int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1\u00a0000"},
		{123456, "123\u00a0456"},
		{1234567, "1\u00a0234\u00a0567"},
		{-45000, "-45\u00a0000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatThousands(tt.in))
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "150", FormatDecimal(150))
	assert.Equal(t, "150.5", FormatDecimal(150.5))
	assert.Equal(t, "0.33", FormatDecimal(1.0/3))
}

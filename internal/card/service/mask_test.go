package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "4111111111111111", expected: "411111******1111"},
		{input: "378282246310005", expected: "378282*****0005"},
		{input: "4222222222222", expected: "422222***2222"},
		{input: "12345678901", expected: "123456*8901"},
		{input: "1234567890", expected: "**********"},
		{input: "123", expected: "***"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			masked := MaskCardNumber(tt.input)
			assert.Equal(t, tt.expected, masked)
			assert.Len(t, []rune(masked), len([]rune(tt.input)))
		})
	}
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "1111", LastFour("4111111111111111"))
	assert.Equal(t, "5678", LastFour("12345678"))
	assert.Equal(t, "*******", LastFour("1234567"))
	assert.Equal(t, "", LastFour(""))
}

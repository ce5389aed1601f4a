package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.True(t, Valid(1))
	assert.True(t, Valid(5))
	assert.False(t, Valid(6))
	assert.False(t, Valid(-1))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{1, "very bad"},
		{2, "bad"},
		{3, "neutral"},
		{4, "good"},
		{5, "very good"},
		{0, LabelUnknown},
		{6, LabelUnknown},
		{-3, LabelUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.value))
	}
}

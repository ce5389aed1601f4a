package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithInput(s string) *App {
	return &App{reader: bufio.NewReader(strings.NewReader(s))}
}

func TestPromptString_TrimsWhitespace(t *testing.T) {
	a := appWithInput("  hello world  \n")
	got, err := a.promptString("Name")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestPromptInt(t *testing.T) {
	a := appWithInput("4\n")
	got, err := a.promptInt("Sentiment")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestPromptInt_Invalid(t *testing.T) {
	a := appWithInput("four\n")
	_, err := a.promptInt("Sentiment")
	assert.Error(t, err)
}

func TestPromptOptionalFloat_EmptyIsNil(t *testing.T) {
	a := appWithInput("\n")
	got, err := a.promptOptionalFloat("Latitude")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPromptOptionalFloat_Value(t *testing.T) {
	a := appWithInput("25.03\n")
	got, err := a.promptOptionalFloat("Latitude")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 25.03, *got, 1e-9)
}

func TestParseID(t *testing.T) {
	id, ok := parseID([]string{"42"})
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = parseID(nil)
	assert.False(t, ok)

	_, ok = parseID([]string{"abc"})
	assert.False(t, ok)
}

package chat

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	t.Parallel()

	con := NewConsole(strings.NewReader("  bank \n\nlast"), io.Discard, false)

	line, err := con.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "bank", line)

	line, err = con.ReadLine()
	require.NoError(t, err)
	assert.Empty(t, line, "empty line is silence")

	line, err = con.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = con.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_PlainOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	con := NewConsole(strings.NewReader(""), out, false)

	con.Info("I know %d %s.", 3, "nouns")
	con.Prompt("Which one?\nStay silent for any.")
	con.Error("%d%% sure", 100)

	assert.Equal(t, "I know 3 nouns.\nWhich one?\nStay silent for any.\n100% sure\n", out.String())
}

func TestIntroduceAndReady(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	con := NewConsole(strings.NewReader(""), out, false)
	Introduce(con)
	Ready(con)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Let me introduce myself: I am the WordNet ChatBot.\n"))
	assert.True(t, strings.HasSuffix(text, "I am ready to chat with you now.\n"))
}

package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console is the line-oriented terminal surface of a session. Messages are
// coloured by role; an empty input line means silence.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	color bool

	info   lipgloss.Style
	ack    lipgloss.Style
	err    lipgloss.Style
	prompt lipgloss.Style
}

// NewConsole wraps in and out. With color disabled messages are written as is.
func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	style := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	return &Console{
		in:     sc,
		out:    out,
		color:  color,
		info:   style("6"),
		ack:    style("2"),
		err:    style("1"),
		prompt: style("5"),
	}
}

// Info prints neutral narration.
func (c *Console) Info(format string, args ...any) { c.print(c.info, format, args...) }

// Ack confirms a decision.
func (c *Console) Ack(format string, args ...any) { c.print(c.ack, format, args...) }

// Error reports a problem with the user's answer.
func (c *Console) Error(format string, args ...any) { c.print(c.err, format, args...) }

// Prompt asks the user something.
func (c *Console) Prompt(format string, args ...any) { c.print(c.prompt, format, args...) }

func (c *Console) print(st lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = st.Render(msg)
	}
	fmt.Fprintln(c.out, msg)
}

// ReadLine returns the next input line with surrounding spaces removed.
// It returns io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Introduce prints the greeting shown while the lexicon is loading.
func Introduce(c *Console) {
	c.Info("Let me introduce myself: I am the WordNet ChatBot.")
	c.Info("During our upcoming chat, we will dive into a huge and complex world of words.")
	c.Info("Please, give me a few seconds to refresh my memory before we start chatting ...")
}

// Ready announces that the dialogue can start.
func Ready(c *Console) {
	c.Info("I am ready to chat with you now.")
}

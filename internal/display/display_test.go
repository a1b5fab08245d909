package display

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

func TestModelEnterSendsInput(t *testing.T) {
	in := make(chan string, 1)
	var echoed []string
	m := newModel(in, make(chan struct{}), func(s string) { echoed = append(echoed, s) })

	m.input.SetValue("scale soup")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "scale soup", <-in)
	assert.Equal(t, []string{"scale soup"}, echoed)
	assert.Empty(t, next.(model).input.Value(), "input is cleared after enter")
}

func TestModelIgnoresBlankInput(t *testing.T) {
	in := make(chan string, 1)
	m := newModel(in, make(chan struct{}), nil)

	m.input.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Len(t, in, 0)
}

func TestModelStatusBar(t *testing.T) {
	m := newModel(make(chan string), make(chan struct{}), nil)

	next, _ := m.Update(statusMsg(engine.Status{Recipes: 2, LastAction: "added Soup"}))
	view := next.(model).View()

	assert.Contains(t, view, "2 recipes")
	assert.Contains(t, view, "added Soup")
	assert.Contains(t, view, prompt)
}

func TestModelWindowResize(t *testing.T) {
	m := newModel(make(chan string), make(chan struct{}), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	got := next.(model)
	assert.Equal(t, 100, got.width)
	assert.Equal(t, 100-len(prompt), got.input.Width)
}

func TestRecipeCount(t *testing.T) {
	assert.Equal(t, "0 recipes", recipeCount(0))
	assert.Equal(t, "1 recipe", recipeCount(1))
	assert.Equal(t, "7 recipes", recipeCount(7))
}

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)

	p.PrintStep("Ingredients:")
	p.PrintInstruction("1. Carrot - 2 cup")
	p.PrintUrgent("Recipe \"Stew\" not found.")
	p.Printf("%d recipes", 3)

	assert.Equal(t, "  Ingredients:\n  1. Carrot - 2 cup\n  ! Recipe \"Stew\" not found.\n3 recipes\n", buf.String())
}

func TestScanLines(t *testing.T) {
	ch := ScanLines(context.Background(), strings.NewReader("1\nSoup\n\n7\n"), logger.Discard())

	var got []string
	for l := range ch {
		got = append(got, l)
	}
	assert.Equal(t, []string{"1", "Soup", "", "7"}, got)
}

func TestScanLinesStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := ScanLines(ctx, strings.NewReader("a\nb\nc\n"), logger.Discard())
	cancel()

	// The channel closes after at most the line already in flight.
	n := 0
	for range ch {
		n++
	}
	assert.LessOrEqual(t, n, 3)
}

func TestScanLinesLongLines(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	ch := ScanLines(context.Background(), strings.NewReader(long+"\n7\n"), logger.Discard())

	var got []string
	for l := range ch {
		got = append(got, l)
	}
	require.Len(t, got, 2, "lines past the default 64 KiB buffer still arrive")
	assert.Equal(t, long, got[0])
}

func TestScanLinesLogsReadError(t *testing.T) {
	var logs bytes.Buffer
	tooLong := strings.Repeat("x", maxLineBytes+1)
	ch := ScanLines(context.Background(), strings.NewReader("1\n"+tooLong+"\n7\n"), logger.New(logger.LevelNormal, &logs))

	var got []string
	for l := range ch {
		got = append(got, l)
	}
	assert.Equal(t, []string{"1"}, got)
	assert.Contains(t, logs.String(), "reading input")
	assert.Contains(t, logs.String(), bufio.ErrTooLong.Error())
}

func TestCentre(t *testing.T) {
	identity := func(s ...string) string { return strings.Join(s, "") }

	got := centre("ab\nabcd\n", 8, identity)
	assert.Equal(t, "  ab\n  abcd\n", got)

	got = centre("abcd", 2, identity)
	assert.Equal(t, "abcd\n", got, "no padding when the art is wider than the terminal")
}

func TestPlainBanner(t *testing.T) {
	b := PlainBanner()
	assert.True(t, strings.HasSuffix(b, "\n"))
	assert.Greater(t, strings.Count(b, "\n"), 1)
}

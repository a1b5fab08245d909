package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/recipebook/internal/engine"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

var _ engine.Printer = (*Plain)(nil)

// Plain is an unstyled printer for piped input and scripted sessions.
// It writes every line with its two-space indent and no colour.
type Plain struct {
	w io.Writer
}

// NewPlain creates a printer writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Println(a ...interface{}) { fmt.Fprintln(p.w, a...) }

// Printf writes the formatted text followed by a newline.
func (p *Plain) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

func (p *Plain) PrintChat(text string)        { p.Println("  " + text) }
func (p *Plain) PrintStep(text string)        { p.Println("  " + text) }
func (p *Plain) PrintInstruction(text string) { p.Println("  " + text) }
func (p *Plain) PrintHint(text string)        { p.Println("  " + text) }
func (p *Plain) PrintUrgent(text string)      { p.Println("  ! " + text) }

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ScanLines streams lines from r until EOF or ctx is done, then closes
// the returned channel. A read error, including a line longer than
// maxLineBytes, is logged before the channel closes.
func ScanLines(ctx context.Context, r io.Reader, log *logger.Logger) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case out <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Error("reading input: %v", err)
		}
	}()
	return out
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

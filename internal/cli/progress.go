package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	progressOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	progressFail = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// progress writes one status line per step. A nil *progress is silent, so
// callers never branch on whether output is enabled.
type progress struct {
	out io.Writer
}

func newProgress() *progress {
	if !progressEnabled() {
		return nil
	}
	return &progress{out: os.Stderr}
}

type progressStep struct {
	out     io.Writer
	started time.Time
}

func (p *progress) Start(label string) *progressStep {
	if p == nil {
		return nil
	}
	fmt.Fprintf(p.out, "%s... ", label)
	return &progressStep{out: p.out, started: time.Now()}
}

// Done ends the line with an optional detail and the elapsed time.
func (s *progressStep) Done(detail string) {
	if s == nil {
		return
	}
	status := "done"
	if detail != "" {
		status = detail
	}
	fmt.Fprintf(s.out, "%s (%s)\n", progressOK.Render(status), formatDuration(time.Since(s.started)))
}

// Fail ends the line. The error itself is reported once by Execute.
func (s *progressStep) Fail() {
	if s == nil {
		return
	}
	fmt.Fprintln(s.out, progressFail.Render("failed"))
}

func progressEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	for _, env := range []string{"THEMEGEN_NO_PROGRESS", "NO_PROGRESS"} {
		if _, ok := os.LookupEnv(env); ok {
			return false
		}
	}
	return stderrIsTerminal()
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"tasnim.dev/netlab/internal/orchestrator"
	"tasnim.dev/netlab/internal/tui/theme"
)

type phaseDoneMsg struct {
	phase    string
	duration time.Duration
	ok       bool
}

type resourceMsg struct {
	phase   string
	outcome string
}

type workDoneMsg struct{ err error }

// ProgressModel shows finished phases and a spinner with live resource
// counts for the phase in flight.
type ProgressModel struct {
	title    string
	spinner  spinner.Model
	phases   []phaseDoneMsg
	counts   map[string]int
	done     bool
	canceled bool
	err      error
}

func NewProgressModel(title string) ProgressModel {
	return ProgressModel{
		title:   title,
		spinner: theme.NewSpinner(),
		counts:  make(map[string]int),
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			return m, tea.Quit
		}

	case phaseDoneMsg:
		m.phases = append(m.phases, msg)
		m.counts = make(map[string]int)
		return m, nil

	case resourceMsg:
		m.counts[msg.outcome]++
		return m, nil

	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ProgressModel) View() tea.View {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(m.title) + "\n")
	for _, p := range m.phases {
		status := "ok"
		if !p.ok {
			status = "failed"
		}
		fmt.Fprintf(&b, "  %s %s\n", theme.RenderStatus(status), theme.MutedStyle.Render(p.phase+" "+formatDuration(p.duration)))
	}
	if !m.done && !m.canceled {
		b.WriteString("  " + m.spinner.View() + " working")
		for _, outcome := range []string{"created", "deleted", "retried", "partial", "dropped"} {
			if n := m.counts[outcome]; n > 0 {
				fmt.Fprintf(&b, "  %s %d", outcome, n)
			}
		}
		b.WriteString("\n")
	}
	return tea.NewView(b.String())
}

// progressRecorder forwards run metrics to the next recorder and to the
// progress program.
type progressRecorder struct {
	next orchestrator.Recorder
	send func(tea.Msg)
}

func (p *progressRecorder) ObservePhase(operation, phase string, d time.Duration, ok bool) {
	if p.next != nil {
		p.next.ObservePhase(operation, phase, d, ok)
	}
	p.send(phaseDoneMsg{phase: phase, duration: d, ok: ok})
}

func (p *progressRecorder) CountResource(phase, outcome string) {
	if p.next != nil {
		p.next.CountResource(phase, outcome)
	}
	p.send(resourceMsg{phase: phase, outcome: outcome})
}

// printWriter prints each write above the running program. Once the program
// has exited, writes go to fallback instead.
type printWriter struct {
	mu       sync.Mutex
	p        *tea.Program
	fallback io.Writer
	detached bool
}

func (w *printWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.detached {
		return w.fallback.Write(b)
	}
	w.p.Println(strings.TrimRight(string(b), "\n"))
	return len(b), nil
}

func (w *printWriter) detach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.detached = true
}

// Work is a run driven under RunWithProgress. It must report through rec and
// write its logs to logs.
type Work func(ctx context.Context, rec orchestrator.Recorder, logs io.Writer) error

// RunWithProgress runs work while rendering its phases on out. Ctrl+C cancels
// the context passed to work and closes the view; logs written after that go
// to errOut. The result is whatever work returns.
func RunWithProgress(ctx context.Context, in io.Reader, out, errOut io.Writer, title string, next orchestrator.Recorder, work Work) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgressModel(title),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	rec := &progressRecorder{next: next, send: p.Send}
	logs := &printWriter{p: p, fallback: errOut}

	errc := make(chan error, 1)
	go func() {
		err := work(ctx, rec, logs)
		errc <- err
		p.Send(workDoneMsg{err: err})
	}()

	_, runErr := p.Run()
	logs.detach()
	cancel()
	err := <-errc
	if runErr != nil {
		return fmt.Errorf("progress display: %w", runErr)
	}
	return err
}

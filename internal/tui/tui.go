// internal/tui/tui.go

// Package tui provides the Bubble Tea view that shows a completion while it streams.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/quotes"
	"github.com/mwiater/careerpath/internal/util"
)

// QuoteInterval is how long each quote stays on screen.
const QuoteInterval = 7 * time.Second

// Job runs one completion and reports streamed text through progress.
type Job func(ctx context.Context, progress providers.ProgressFunc) error

// streamChunkMsg is a message sent when a new chunk of a streaming response is received.
type streamChunkMsg string

// streamEndMsg is sent once the job has returned without error.
type streamEndMsg struct{}

// streamErr is sent when the job fails.
type streamErr struct{ error }

// tickMsg drives the elapsed timer.
type tickMsg time.Time

// quoteMsg advances the quote header.
type quoteMsg struct{}

// model is the streaming view state.
type model struct {
	title      string
	spinner    spinner.Model
	viewport   viewport.Model
	quotes     []quotes.Quote
	quoteIndex int
	buf        strings.Builder
	chunks     int
	isLoading  bool
	err        error
	width      int
	height     int
	started    time.Time
	elapsed    time.Duration
}

func initialModel(title string, pool []quotes.Quote) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		title:     title,
		spinner:   s,
		viewport:  viewport.New(100, 10),
		quotes:    pool,
		isLoading: true,
		started:   time.Now(),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func quoteCmd() tea.Cmd {
	return tea.Tick(QuoteInterval, func(time.Time) tea.Msg { return quoteMsg{} })
}

// Init starts the spinner, the timer and the quote rotation.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(), quoteCmd())
}

// Update handles stream, timer and key messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.isLoading {
				m.err = context.Canceled
				m.isLoading = false
			}
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 4
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
		m.refresh()
		return m, nil

	case streamChunkMsg:
		m.buf.WriteString(string(msg))
		m.chunks++
		m.refresh()
		return m, nil

	case streamEndMsg:
		m.isLoading = false
		m.elapsed = time.Since(m.started)
		return m, tea.Quit

	case streamErr:
		m.isLoading = false
		m.err = msg.error
		m.elapsed = time.Since(m.started)
		return m, tea.Quit

	case quoteMsg:
		if !m.isLoading {
			return m, nil
		}
		m.quoteIndex++
		return m, quoteCmd()

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) refresh() {
	text := m.buf.String()
	if m.viewport.Width > 0 {
		text = util.WrapToWidth(text, m.viewport.Width)
	}
	m.viewport.SetContent(text)
	m.viewport.GotoBottom()
}

// View renders the header, the quote, the streamed text and the status line.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	quoteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))

	b.WriteString(headerStyle.Render(m.title) + "\n")
	if len(m.quotes) > 0 {
		q := quotes.Pick(m.quotes, m.quoteIndex)
		b.WriteString(quoteStyle.Render(util.TruncateRunes(q.String(), max(m.width-2, 10))) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())

	switch {
	case m.err != nil && !errors.Is(m.err, context.Canceled):
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.isLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.started).Seconds())
		b.WriteString(fmt.Sprintf("\n%s Generating... %ss (%d chunks, q to cancel)", m.spinner.View(), timer, m.chunks))
	default:
		b.WriteString(fmt.Sprintf("\nDone in %.1fs", m.elapsed.Seconds()))
	}
	return b.String()
}

// Run shows the streaming view while job runs and returns the job's error.
// Quitting early cancels the job's context.
func Run(ctx context.Context, title string, pool []quotes.Quote, job Job) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := initialModel(title, pool)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	done := make(chan error, 1)
	go func() {
		err := job(ctx, func(c providers.StreamChunk) {
			if !c.IsFinal && c.Text != "" {
				p.Send(streamChunkMsg(c.Text))
			}
		})
		if err != nil {
			p.Send(streamErr{error: err})
		} else {
			p.Send(streamEndMsg{})
		}
		done <- err
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		cancel()
		<-done
		return fmt.Errorf("running view: %w", err)
	}
	if m.err != nil && errors.Is(m.err, context.Canceled) {
		cancel()
	}
	return <-done
}

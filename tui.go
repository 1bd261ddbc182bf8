package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keychord/shortcut"
)

// TUI message types
type ListenerReadyMsg struct{ Backend string }
type ListenerStoppedMsg struct{}
type FiredMsg struct {
	Label string
	At    time.Time
}
type KeyEventMsg struct{ Kind, Key string }
type statsTickMsg time.Time

const maxFires = 12

type fireRecord struct {
	label string
	at    time.Time
}

type tuiModel struct {
	eng           *shortcut.Engine
	backend       string
	shortcuts     []string
	counts        map[string]int
	fires         []fireRecord
	lastKind      string
	lastKey       string
	stats         shortcut.Stats
	running       bool
	start         time.Time
	width, height int
}

var (
	tuiProgram   *tea.Program
	tuiMu        sync.Mutex
	tuiReady     = make(chan struct{})
	tuiReadyOnce sync.Once
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	listenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	fireStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

func NewTUIProgram(eng *shortcut.Engine, shortcuts []string, backend string) *tea.Program {
	m := tuiModel{
		eng:       eng,
		backend:   backend,
		shortcuts: shortcuts,
		counts:    make(map[string]int),
		start:     time.Now(),
	}
	return tea.NewProgram(m, tea.WithAltScreen())
}

// tuiSend delivers a message to the TUI if one is running.
func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func statsTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return statsTickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return statsTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tuiReadyOnce.Do(func() { close(tuiReady) })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case statsTickMsg:
		m.stats = m.eng.Stats()
		m.running = m.eng.Running()
		return m, statsTick()

	case ListenerReadyMsg:
		m.backend = msg.Backend
		m.running = true

	case ListenerStoppedMsg:
		m.running = false

	case FiredMsg:
		m.counts[msg.Label]++
		m.fires = append(m.fires, fireRecord{label: msg.Label, at: msg.At})
		if len(m.fires) > maxFires {
			m.fires = m.fires[len(m.fires)-maxFires:]
		}

	case KeyEventMsg:
		m.lastKind = msg.Kind
		m.lastKey = msg.Key
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	const infoWidth = 36

	var infoLines []string
	infoLines = append(infoLines, titleStyle.Render("keychord "+version))
	infoLines = append(infoLines, "")

	if m.running {
		infoLines = append(infoLines,
			listenStyle.Render("● LISTENING")+dimStyle.Render(" ("+m.backend+")"))
	} else {
		infoLines = append(infoLines, stoppedStyle.Render("○ STOPPED"))
	}
	infoLines = append(infoLines, dimStyle.Render("up "+formatUptime(time.Since(m.start))))
	infoLines = append(infoLines, "")

	infoLines = append(infoLines, labelStyle.Render("shortcuts"))
	for _, s := range m.shortcuts {
		line := labelStyle.Render("  " + s)
		if n := m.counts[s]; n > 0 {
			line += " " + countStyle.Render(fmt.Sprintf("×%d", n))
		}
		infoLines = append(infoLines, line)
	}
	infoLines = append(infoLines, "")

	infoLines = append(infoLines, dimStyle.Render(fmt.Sprintf(
		"pressed %d  released %d  fired %d",
		m.stats.Pressed, m.stats.Released, m.stats.Fired)))
	if m.stats.ActionsDropped > 0 || m.stats.ActionPanics > 0 {
		infoLines = append(infoLines, warnStyle.Render(fmt.Sprintf(
			"dropped %d  panics %d",
			m.stats.ActionsDropped, m.stats.ActionPanics)))
	}
	infoLines = append(infoLines, "")

	if m.lastKey != "" {
		infoLines = append(infoLines, dimStyle.Render("last key: "+m.lastKind+" "+m.lastKey))
	}
	infoLines = append(infoLines, helpStyle.Render("q to quit"))

	// Right panel: recent fires
	logWidth := m.width - infoWidth - 1
	if logWidth < 20 {
		logWidth = 20
	}
	wrapWidth := logWidth - 16
	if wrapWidth < 10 {
		wrapWidth = 10
	}

	var logContent strings.Builder
	logContent.WriteString(titleStyle.Render(fmt.Sprintf("Recent fires (#%d)", m.stats.Fired)) + "\n\n")
	if len(m.fires) == 0 {
		logContent.WriteString(dimStyle.Render("No fires yet"))
	} else {
		for _, f := range m.fires {
			stamp := dimStyle.Render(f.at.Format("15:04:05.000"))
			lines := wrapText(f.label, wrapWidth)
			logContent.WriteString(stamp + "  " + fireStyle.Render(lines[0]) + "\n")
			for _, l := range lines[1:] {
				logContent.WriteString(strings.Repeat(" ", 14) + fireStyle.Render(l) + "\n")
			}
		}
	}

	infoPanel := lipgloss.NewStyle().
		Width(infoWidth - 1).
		Height(m.height).
		Render(strings.Join(infoLines, "\n"))

	logPanel := lipgloss.NewStyle().
		Width(logWidth).
		Height(m.height).
		PaddingLeft(1).
		Render(logContent.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, infoPanel, logPanel)
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func wrapText(text string, width int) []string {
	if len(text) == 0 {
		return []string{""}
	}
	if width <= 0 {
		width = 1
	}

	var lines []string
	for len(text) > width {
		// Find last space within width
		splitAt := width
		for i := width; i > 0; i-- {
			if text[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], " ")
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return lines
}

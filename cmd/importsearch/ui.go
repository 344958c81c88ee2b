// # cmd/importsearch/ui.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"importsearch/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	entry      string
	root       string
	fileCount  int
	depCount   int
	external   int
	cycleCount int
	lastRun    time.Time
}

type updateMsg struct {
	result *search.Result
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.apply(msg.result)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) apply(result *search.Result) {
	m.entry = result.Entry
	m.root = result.Root
	m.fileCount = len(result.Visited)
	m.cycleCount = len(result.Cycles)
	m.lastRun = time.Now()

	m.depCount = 0
	m.external = 0
	for _, file := range result.Graph.Files() {
		deps, _ := result.Graph.Deps(file)
		m.depCount += len(deps)
		for _, dep := range deps {
			if !dep.IsResolved() {
				m.external++
			}
		}
	}

	items := []list.Item{}
	for _, file := range result.Summary.Keys() {
		names, _ := result.Summary.Get(file)
		desc := "no imports"
		if len(names) > 0 {
			desc = strings.Join(names, ", ")
		}
		items = append(items, item{title: file, desc: desc})
	}
	m.list.SetItems(items)
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Root: %s | Last run: %s | %d files | %d imports | %d external",
		m.root, m.lastRun.Format("15:04:05"), m.fileCount, m.depCount, m.external))

	var health string
	if m.cycleCount == 0 {
		health = successStyle.Render("✅ No import cycles")
	} else {
		health = cycleStyle.Render(fmt.Sprintf("⚠️  %d import cycles", m.cycleCount))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle(fmt.Sprintf("Import Search: %s", m.entry)), status, health)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel(result *search.Result) model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Import Summary"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := model{
		list:    l,
		lastRun: time.Now(),
	}
	m.apply(result)
	return m
}

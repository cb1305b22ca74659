package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/map-engine/pkg/travel"
	"github.com/jwebster45206/map-engine/pkg/worldmap"
)

const PlaceHolderText = "Describe a location, or /travel <place>, /where, /copy, /quit..."

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("79"))

	edgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config        *ConsoleConfig
	client        *http.Client
	mapData       *worldmap.MapData
	currentNodeID string
	viewport      viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	loading       bool
	transcript    []string
}

type resolvedMsg struct {
	description string
	matched     bool
	nodeID      string
}

type traveledMsg struct {
	from  string
	to    string
	steps []travel.Step
}

type errMsg struct {
	err error
}

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, mapData *worldmap.MapData) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	ui := ConsoleUI{
		config:   cfg,
		client:   client,
		mapData:  mapData,
		textarea: ta,
	}
	ui.transcript = append(ui.transcript,
		titleStyle.Render("Map Console")+"\n",
		fmt.Sprintf("Loaded %q: %d nodes, %d edges. Session %s.\n",
			mapData.Name, len(mapData.Nodes), len(mapData.Edges), mapData.ID))
	return ui
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
	)
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 1
		footerHeight := m.textarea.Height() + 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.textarea.SetWidth(msg.Width - 2)
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}

	case resolvedMsg:
		m.loading = false
		if msg.matched {
			m.currentNodeID = msg.nodeID
			m.say(nodeStyle.Render(fmt.Sprintf("Resolved to %s", m.describeNode(msg.nodeID))))
		} else {
			m.say(statusStyle.Render("No matching node; location stays unresolved."))
		}
		m.refreshViewport()

	case traveledMsg:
		m.loading = false
		if msg.steps == nil {
			m.say(statusStyle.Render(fmt.Sprintf("No route from %s to %s.", msg.from, msg.to)))
		} else {
			m.say(nodeStyle.Render(fmt.Sprintf("Route from %s to %s:", msg.from, msg.to)))
			for _, step := range msg.steps {
				if step.Step == travel.StepNode {
					m.say("  " + nodeStyle.Render(m.describeNode(step.ID)))
				} else {
					m.say("  " + edgeStyle.Render("-- "+m.describeEdge(step.ID)))
				}
			}
		}
		m.refreshViewport()

	case errMsg:
		m.loading = false
		m.say(errorStyle.Render("Error: " + msg.err.Error()))
		m.refreshViewport()
	}

	return m, tea.Batch(taCmd, vpCmd)
}

func (m ConsoleUI) handleInput(input string) (tea.Model, tea.Cmd) {
	switch {
	case input == "/quit" || input == "/exit":
		return m, tea.Quit

	case input == "/where":
		if m.currentNodeID == "" {
			m.say(statusStyle.Render("Nowhere yet. Describe a location to get started."))
		} else {
			m.say(nodeStyle.Render("Current: " + m.describeNode(m.currentNodeID)))
			if node := m.mapData.NodeByID(m.currentNodeID); node != nil && node.Description != "" {
				m.say(wordwrap.String(node.Description, m.viewport.Width-4))
			}
		}
		m.refreshViewport()
		return m, nil

	case input == "/copy":
		if m.currentNodeID == "" {
			m.say(statusStyle.Render("Nothing to copy yet."))
		} else if err := clipboard.WriteAll(m.currentNodeID); err != nil {
			m.say(errorStyle.Render("Error: " + err.Error()))
		} else {
			m.say(statusStyle.Render("Copied " + m.currentNodeID + " to clipboard."))
		}
		m.refreshViewport()
		return m, nil

	case strings.HasPrefix(input, "/travel "):
		query := strings.TrimSpace(strings.TrimPrefix(input, "/travel "))
		if m.currentNodeID == "" {
			m.say(statusStyle.Render("Resolve a starting location first."))
			m.refreshViewport()
			return m, nil
		}
		m.say(promptStyle.Render("> /travel " + query))
		m.loading = true
		m.refreshViewport()
		return m, m.travelCmd(query)

	default:
		m.say(promptStyle.Render("> " + input))
		m.loading = true
		m.refreshViewport()
		return m, m.resolveCmd(input)
	}
}

// resolveCmd resolves a free-text description to a node.
func (m ConsoleUI) resolveCmd(description string) tea.Cmd {
	return func() tea.Msg {
		result, err := resolveLocation(m.client, m.config.APIBaseURL, m.mapData.ID, description, m.currentNodeID)
		if err != nil {
			return errMsg{err: err}
		}
		return resolvedMsg{description: description, matched: result.Matched, nodeID: result.NodeID}
	}
}

// travelCmd resolves the target, then requests a route from the
// current node.
func (m ConsoleUI) travelCmd(query string) tea.Cmd {
	from := m.currentNodeID
	return func() tea.Msg {
		result, err := resolveLocation(m.client, m.config.APIBaseURL, m.mapData.ID, query, from)
		if err != nil {
			return errMsg{err: err}
		}
		if !result.Matched {
			return traveledMsg{from: from, to: query, steps: nil}
		}
		route, err := travelPath(m.client, m.config.APIBaseURL, m.mapData.ID, from, result.NodeID)
		if err != nil {
			return errMsg{err: err}
		}
		return traveledMsg{from: from, to: result.NodeID, steps: route.Steps}
	}
}

func (m *ConsoleUI) say(line string) {
	m.transcript = append(m.transcript, line)
}

func (m *ConsoleUI) refreshViewport() {
	if !m.ready {
		return
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(wordwrap.String(line, width))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m ConsoleUI) describeNode(nodeID string) string {
	if node := m.mapData.NodeByID(nodeID); node != nil {
		return fmt.Sprintf("%s (%s, %s)", node.PlaceName, node.ID, node.NodeType)
	}
	return nodeID
}

func (m ConsoleUI) describeEdge(edgeID string) string {
	if travel.IsHierarchyEdge(edgeID) {
		return "contained within"
	}
	if edge := m.mapData.EdgeByID(edgeID); edge != nil {
		if edge.TravelTime != "" {
			return fmt.Sprintf("%s (%s)", edge.Type, edge.TravelTime)
		}
		return string(edge.Type)
	}
	return edgeID
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := statusStyle.Render("esc to quit")
	if m.loading {
		status = statusStyle.Render("working...")
	}
	if m.currentNodeID != "" {
		status += statusStyle.Render("  |  at " + m.currentNodeID)
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		titleStyle.Render(" Map Console "),
		m.viewport.View(),
		m.textarea.View(),
		status)
}

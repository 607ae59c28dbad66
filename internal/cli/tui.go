package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matforge/matforge/pkg/io"
	"github.com/matforge/matforge/pkg/material"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Inspect Command
// =============================================================================

// inspectCommand creates the interactive graph browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <graph.json>",
		Short: "Browse an imported graph interactively",
		Long: `Inspect opens a graph JSON file written by import in an interactive node
browser. The list view shows every attached node; selecting one shows its
inputs, constants and asset references.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if g.Len() == 0 {
				printInfo("Graph %s has no attached nodes", g.Name())
				return nil
			}

			model := NewGraphModel(g)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// GraphModel - Interactive node browser
// =============================================================================

// GraphModel is the bubbletea model for browsing a reconstructed graph.
type GraphModel struct {
	Graph  *material.Graph
	All    []*material.Node
	Nodes  []*material.Node
	Cursor int
	Height int
	Offset int
	Detail bool

	Filtering bool
	Filter    string
}

// NewGraphModel creates a browser over the graph's attached nodes.
func NewGraphModel(g *material.Graph) GraphModel {
	nodes := g.Nodes()
	return GraphModel{
		Graph:  g,
		All:    nodes,
		Nodes:  nodes,
		Height: 15,
	}
}

func (m GraphModel) Init() tea.Cmd {
	return nil
}

func (m GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilter(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "b":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			if m.Filter != "" {
				m.Filter = ""
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit
		case "/":
			if !m.Detail {
				m.Filtering = true
			}
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Nodes) > 0 {
				m.Detail = true
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// updateFilter consumes keystrokes while the filter prompt is active.
func (m GraphModel) updateFilter(msg tea.KeyMsg) GraphModel {
	switch msg.String() {
	case "esc":
		m.Filtering = false
		m.Filter = ""
		m.applyFilter()
	case "enter":
		m.Filtering = false
	case "backspace":
		if m.Filter != "" {
			m.Filter = m.Filter[:len(m.Filter)-1]
			m.applyFilter()
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.Filter += string(msg.Runes)
			m.applyFilter()
		}
	}
	return m
}

// applyFilter narrows the visible nodes to those whose name or kind
// contains the filter text, case-insensitively, and resets the viewport.
func (m *GraphModel) applyFilter() {
	if m.Filter == "" {
		m.Nodes = m.All
	} else {
		needle := strings.ToLower(m.Filter)
		filtered := make([]*material.Node, 0, len(m.All))
		for _, n := range m.All {
			if strings.Contains(strings.ToLower(n.Name), needle) ||
				strings.Contains(strings.ToLower(string(n.Kind)), needle) {
				filtered = append(filtered, n)
			}
		}
		m.Nodes = filtered
	}
	m.Cursor = 0
	m.Offset = 0
}

func (m GraphModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

// listView renders the scrollable node table.
func (m GraphModel) listView() string {
	var b strings.Builder

	title := fmt.Sprintf("%s (%s)", m.Graph.Name(), m.Graph.Unit())
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	if m.Filtering {
		b.WriteString(listDimStyle.Render("type to filter  ⏎ apply  esc clear"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  / filter  q quit"))
	}
	b.WriteString("\n")
	if m.Filtering || m.Filter != "" {
		b.WriteString(listDimStyle.Render("/") + StyleValue.Render(m.Filter))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	end := m.Offset + m.Height
	if end > len(m.Nodes) {
		end = len(m.Nodes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		wired := fmt.Sprintf("%d", wiredCount(n))
		pos := fmt.Sprintf("%d,%d", n.EditorX, n.EditorY)
		rows = append(rows, []string{cursor, n.Name, string(n.Kind), wired, pos})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Kind", "Inputs", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Nodes) {
				return lipgloss.NewStyle()
			}
			n := m.Nodes[actualIdx]
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				base = base.Foreground(colorDim)
			}
			if missingRefCount(n) > 0 {
				return base.Foreground(colorYellow)
			}
			if col == 1 {
				return base.Foreground(colorWhite)
			}
			return base.Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  no nodes match"))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))
	}

	return b.String()
}

// detailView renders one node in full.
func (m GraphModel) detailView() string {
	n := m.Nodes[m.Cursor]
	var b strings.Builder

	b.WriteString(StyleTitle.Render(n.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	row := func(key, value string) {
		keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
		b.WriteString(keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
	}

	row("Kind", string(n.Kind))
	if n.Owner != "" {
		row("Owner", n.Owner)
	}
	row("Position", fmt.Sprintf("%d,%d", n.EditorX, n.EditorY))
	if n.Desc != "" {
		row("Desc", n.Desc)
	}

	if len(n.Inputs) > 0 {
		b.WriteString("\n" + StyleHighlight.Render("Inputs") + "\n")
		for _, key := range slices.Sorted(maps.Keys(n.Inputs)) {
			conn := n.Inputs[key]
			if conn.Connected() {
				row(key, conn.Node)
			} else {
				row(key, listDimStyle.Render("unwired"))
			}
		}
	}
	for i, conn := range n.Slots {
		if i == 0 {
			b.WriteString("\n" + StyleHighlight.Render("Slots") + "\n")
		}
		if conn.Connected() {
			row(fmt.Sprintf("%d", i), conn.Node)
		} else {
			row(fmt.Sprintf("%d", i), listDimStyle.Render("unwired"))
		}
	}

	if len(n.Refs) > 0 {
		b.WriteString("\n" + StyleHighlight.Render("Assets") + "\n")
		for _, key := range slices.Sorted(maps.Keys(n.Refs)) {
			ref := n.Refs[key]
			if ref.Missing {
				row(key, StyleWarning.Render(ref.Path+" (missing)"))
			} else {
				row(key, ref.Path)
			}
		}
	}

	if len(n.Scalars) > 0 || len(n.Strings) > 0 {
		b.WriteString("\n" + StyleHighlight.Render("Constants") + "\n")
		for _, key := range slices.Sorted(maps.Keys(n.Scalars)) {
			row(key, fmt.Sprintf("%g", n.Scalars[key]))
		}
		for _, key := range slices.Sorted(maps.Keys(n.Strings)) {
			row(key, n.Strings[key])
		}
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// wiredCount counts a node's wired incoming connections across input
// sources.
func wiredCount(n *material.Node) int {
	count := 0
	for _, conn := range n.Inputs {
		if conn.Connected() {
			count++
		}
	}
	for _, conn := range n.Slots {
		if conn.Connected() {
			count++
		}
	}
	for _, fi := range n.FuncInputs {
		if fi.Input.Connected() {
			count++
		}
	}
	for _, layer := range n.Layers {
		if layer.LayerInput.Connected() {
			count++
		}
		if layer.HeightInput.Connected() {
			count++
		}
	}
	for _, gs := range n.Grass {
		if gs.Input.Connected() {
			count++
		}
	}
	for _, ps := range n.Physical {
		if ps.Input.Connected() {
			count++
		}
	}
	for _, ci := range n.CodeInputs {
		if ci.Input.Connected() {
			count++
		}
	}
	return count
}

// missingRefCount counts unresolved asset references on a node.
func missingRefCount(n *material.Node) int {
	count := 0
	for _, ref := range n.Refs {
		if ref.Missing {
			count++
		}
	}
	for _, gs := range n.Grass {
		if gs.GrassType.Missing {
			count++
		}
	}
	for _, ps := range n.Physical {
		if ps.Material.Missing {
			count++
		}
	}
	return count
}

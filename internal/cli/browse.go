package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/dataset"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// browseCommand creates the browse command, an interactive dataset viewer.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dataset.toml]",
		Short: "Browse a dataset interactively",
		Long: `Browse a dataset interactively.

The browse command opens a terminal list of all tools in the dataset, grouped
by assessment category. Selecting a tool prints its full details.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if err := ds.Validate(); err != nil {
				return err
			}
			return runBrowse(ds)
		},
	}
}

// runBrowse runs the tool list TUI and prints the selected tool.
func runBrowse(ds *dataset.Dataset) error {
	model := newToolListModel(ds)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	m, ok := final.(toolListModel)
	if !ok || m.selected == nil {
		return nil
	}
	printTool(*m.selected)
	return nil
}

// printTool prints the detail view for a single tool.
func printTool(t radar.Tool) {
	printNewline()
	fmt.Println(StyleTitle.Render(t.Title) + "  " + renderCategoryBadge(t.Category))
	if t.Description != "" {
		printDetail("%s", t.Description)
	}
	if t.URL != "" {
		fmt.Println("  " + StyleLink.Render(t.URL))
	}
	if t.TeamPosition != "" {
		printDetail("Team: %s", t.TeamPosition)
	}
	if t.AIPosition != "" {
		printDetail("AI: %s", t.AIPosition)
	}
	if t.Reviewer != nil {
		printDetail("Reviewed by %s", t.Reviewer.Name)
	}
}

// renderCategoryBadge renders a colored category label.
func renderCategoryBadge(cat radar.Category) string {
	s, ok := categoryStyles[string(cat)]
	if !ok {
		s = StyleDim
	}
	return s.Render(strings.ToUpper(string(cat)))
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// toolListModel - Interactive tool selection
// =============================================================================

// toolListModel is the bubbletea model for browsing dataset tools.
type toolListModel struct {
	title    string
	tools    []radar.Tool
	cursor   int
	offset   int
	height   int
	selected *radar.Tool
}

// newToolListModel builds the list model with tools grouped by category,
// innermost band first.
func newToolListModel(ds *dataset.Dataset) toolListModel {
	order := make(map[radar.Category]int, 4)
	for i, cat := range radar.Categories() {
		order[cat] = i
	}

	tools := make([]radar.Tool, len(ds.Tools))
	copy(tools, ds.Tools)
	sort.SliceStable(tools, func(i, j int) bool {
		oi, iok := order[tools[i].Category]
		oj, jok := order[tools[j].Category]
		if iok != jok {
			return iok // recognized categories first
		}
		if oi != oj {
			return oi < oj
		}
		return tools[i].ID < tools[j].ID
	})

	return toolListModel{
		title:  ds.Title,
		tools:  tools,
		height: 15,
	}
}

func (m toolListModel) Init() tea.Cmd {
	return nil
}

func (m toolListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.tools)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if len(m.tools) == 0 {
				return m, tea.Quit
			}
			tool := m.tools[m.cursor]
			m.selected = &tool
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m toolListModel) View() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = "Tools"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.tools) {
		end = len(m.tools)
	}

	for i := m.offset; i < end; i++ {
		t := m.tools[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		reviewer := ""
		if t.Reviewer != nil {
			reviewer = listDimStyle.Render("  reviewed by " + t.Reviewer.Name)
		}

		// Pad after styling so ANSI codes don't skew the columns.
		upper := strings.ToUpper(string(t.Category))
		badge := renderCategoryBadge(t.Category) + strings.Repeat(" ", max(1, 10-len(upper)))

		title := fmt.Sprintf("%-24s", t.Title)
		if i == m.cursor {
			b.WriteString(cursor + badge + listSelectedStyle.Render(title) + reviewer)
		} else if !t.Category.Valid() {
			b.WriteString(cursor + badge + listDimStyle.Render(title) + reviewer)
		} else {
			b.WriteString(cursor + badge + listNormalStyle.Render(title) + reviewer)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.tools))))

	return b.String()
}

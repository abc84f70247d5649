package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/toolradar/pkg/dataset"
	"github.com/matzehuels/toolradar/pkg/radar"
)

func browseTestDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Title: "Platform Tools",
		Tools: []radar.Tool{
			{ID: "search", Title: "Search", Category: radar.CategoryAware},
			{ID: "go-lint", Title: "Go Lint", Category: radar.CategoryAdopt},
			{ID: "profiler", Title: "Profiler", Category: radar.CategoryTrial},
			{ID: "legacy", Title: "Legacy", Category: radar.Category("hold")},
		},
	}
}

func TestNewToolListModelOrder(t *testing.T) {
	m := newToolListModel(browseTestDataset())

	if len(m.tools) != 4 {
		t.Fatalf("tools = %d, want 4", len(m.tools))
	}

	// Recognized categories come first, innermost band first, then the rest.
	wantOrder := []string{"go-lint", "profiler", "search", "legacy"}
	for i, id := range wantOrder {
		if m.tools[i].ID != id {
			t.Errorf("tools[%d] = %q, want %q", i, m.tools[i].ID, id)
		}
	}
}

func TestToolListModelNavigation(t *testing.T) {
	m := newToolListModel(browseTestDataset())

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	next, _ := m.Update(down)
	m = next.(toolListModel)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(up)
	m = next.(toolListModel)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(up)
	m = next.(toolListModel)
	if m.cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.cursor)
	}
}

func TestToolListModelSelect(t *testing.T) {
	m := newToolListModel(browseTestDataset())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(toolListModel)

	if m.selected == nil {
		t.Fatal("enter should select the tool under the cursor")
	}
	if m.selected.ID != "go-lint" {
		t.Errorf("selected = %q, want go-lint", m.selected.ID)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestToolListModelQuit(t *testing.T) {
	m := newToolListModel(browseTestDataset())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(toolListModel)

	if m.selected != nil {
		t.Error("quit should not select anything")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestToolListModelView(t *testing.T) {
	m := newToolListModel(browseTestDataset())
	view := m.View()

	for _, want := range []string{"Platform Tools", "Go Lint", "Profiler", "[1/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

package ui

import (
	"strings"
	"testing"

	"github.com/lucky7xz/gridnav/internal/config"
)

func TestView_Initializing(t *testing.T) {
	m := NewModel(config.DefaultConfig(), "", nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder before the first resize, got %q", got)
	}
}

func TestView_Grid(t *testing.T) {
	m := createTestGridModel(t, 14, 4)
	output := m.View()

	for _, want := range []string{"Item 1", "Item 14", "ITEMS: 14", "PER ROW: 4", "ACTIVE: Item 1", "focused"} {
		if !strings.Contains(output, want) {
			t.Errorf("View output missing %q. Got:\n%s", want, output)
		}
	}
}

func TestRenderGrid_RowsFollowItemsPerRow(t *testing.T) {
	m := createTestGridModel(t, 6, 4)
	grid := m.renderGrid()

	// Each cell is three lines tall; 6 items at 4 per row make two rows.
	if lines := strings.Count(grid, "\n") + 1; lines != 6 {
		t.Errorf("expected 6 lines for two rows of cells, got %d:\n%s", lines, grid)
	}
	firstRow := strings.Split(grid, "\n")[1]
	if !strings.Contains(firstRow, "Item 4") || strings.Contains(firstRow, "Item 5") {
		t.Errorf("unexpected first row: %q", firstRow)
	}
}

func TestView_EmptyGrid(t *testing.T) {
	m := createTestGridModel(t, 1, 4)
	m = press(m, "-")
	output := m.View()
	if !strings.Contains(output, "No items") {
		t.Errorf("expected empty grid message. Got:\n%s", output)
	}
	if !strings.Contains(output, "ACTIVE: none") {
		t.Errorf("expected no active item in status. Got:\n%s", output)
	}
}

func TestItemLabel_Truncates(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ItemLabel = "A very long card name %d"
	m := NewModel(cfg, "", nil)
	label := m.itemLabel(0)
	if got := len([]rune(label)); got > cfg.ItemWidth {
		t.Errorf("label %q wider than %d cells", label, cfg.ItemWidth)
	}
	if !strings.HasSuffix(label, "…") {
		t.Errorf("expected an ellipsis, got %q", label)
	}
}

func TestSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ItemCount = 5
	out := Snapshot(cfg, widthFor(cfg, 3), []string{"ArrowRight", "ArrowRight", "ArrowRight", "ArrowDown"})

	if !strings.Contains(out, "PER ROW: 3") {
		t.Errorf("snapshot missing row width. Got:\n%s", out)
	}
	if !strings.Contains(out, "ACTIVE: Item 4") {
		t.Errorf("expected Down from the short last row to stay on Item 4. Got:\n%s", out)
	}
}

package ui

import (
	"log"

	"github.com/lucky7xz/gridnav/internal/core"
)

// Layout constants define the geometry of the TUI elements.
const (
	LayoutSideMargin = 4 // appStyle left + right margin
	LayoutVertMargin = 2 // appStyle top + bottom margin
	cellPadding      = 2 // cellStyle left + right padding
)

// session owns the navigation state for one mounted grid. The Model is copied
// on every Update, so everything that must survive lives behind this pointer.
type session struct {
	nav    *core.Navigator
	layout *core.LayoutEstimator
	resize core.ResizeSignal

	termWidth int // 0 until the first tea.WindowSizeMsg
	cellWidth int // rendered width of one item cell
	focused   bool
}

// newSession mounts a grid: it measures once and subscribes to resizes.
func newSession(count, gap, cellWidth int) *session {
	s := &session{cellWidth: cellWidth}
	s.nav = core.NewNavigator(count, s)
	s.layout = core.NewLayoutEstimator(s, float64(gap), s.requestFocus)
	s.layout.Mount(&s.resize)
	return s
}

// ContainerWidth is the terminal width minus the app margins.
func (s *session) ContainerWidth() (float64, bool) {
	w := s.termWidth - LayoutSideMargin
	if s.termWidth <= 0 || w <= 0 {
		return 0, false
	}
	return float64(w), true
}

// ItemWidth is unmeasured while no item is rendered.
func (s *session) ItemWidth() (float64, bool) {
	if s.nav == nil || s.nav.ItemCount() == 0 || s.cellWidth <= 0 {
		return 0, false
	}
	return float64(s.cellWidth), true
}

func (s *session) ItemsPerRow() int {
	if s.layout == nil {
		return 0
	}
	return s.layout.ItemsPerRow()
}

func (s *session) requestFocus() {
	s.focused = true
}

// onResize records the new terminal width and notifies subscribers.
func (s *session) onResize(width int) {
	s.termWidth = width
	s.resize.Notify()
}

// stepItemCount moves the item count to target one item at a time, so the
// navigator's one-step-back rule sees every removal.
func (s *session) stepItemCount(target int) {
	if target < 0 {
		target = 0
	}
	for s.nav.ItemCount() != target {
		if s.nav.ItemCount() < target {
			s.addItem()
		} else {
			s.removeItem()
		}
	}
}

func (s *session) addItem() {
	wasEmpty := s.nav.ItemCount() == 0
	s.nav.SetItemCount(s.nav.ItemCount() + 1)
	if wasEmpty {
		s.nav.Reset()
	}
}

func (s *session) removeItem() {
	if s.nav.ItemCount() == 0 {
		return
	}
	s.nav.SetItemCount(s.nav.ItemCount() - 1)
}

func (s *session) teardown() {
	s.layout.Teardown()
	log.Printf("grid unmounted")
}

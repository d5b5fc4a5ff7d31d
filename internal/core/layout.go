package core

import (
	"log"
	"math"
)

// MeasurementProvider reports rendered widths. The bool is false while the
// surface has not been measured yet (not mounted, no items rendered).
type MeasurementProvider interface {
	ContainerWidth() (float64, bool)
	ItemWidth() (float64, bool)
}

// ItemsPerRow returns how many items of itemWidth fit in containerWidth when
// adjacent items are separated by gap. N items take N*w + (N-1)*gap, so the
// container is treated as if it had one trailing gap. The result is capped
// at MaxItemsPerRow.
func ItemsPerRow(containerWidth, itemWidth, gap float64) int {
	denom := itemWidth + gap
	if denom <= 0 || math.IsNaN(denom) {
		return 0
	}
	n := math.Floor((containerWidth + gap) / denom)
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n > MaxItemsPerRow {
		return MaxItemsPerRow
	}
	return int(n)
}

// MaxItemsPerRow bounds ItemsPerRow so the float to int conversion cannot wrap.
const MaxItemsPerRow = math.MaxInt32

func finiteWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// LayoutEstimator keeps itemsPerRow in step with the measured surface.
type LayoutEstimator struct {
	provider    MeasurementProvider
	gap         float64
	focus       func()
	itemsPerRow int
	unsubscribe func()
}

// NewLayoutEstimator measures once right away. focus may be nil.
func NewLayoutEstimator(provider MeasurementProvider, gap float64, focus func()) *LayoutEstimator {
	e := &LayoutEstimator{provider: provider, gap: sanitizeGap(gap), focus: focus}
	e.Recompute()
	return e
}

func (e *LayoutEstimator) ItemsPerRow() int { return e.itemsPerRow }

// SetGap changes the column gap and re-measures.
func (e *LayoutEstimator) SetGap(gap float64) {
	e.gap = sanitizeGap(gap)
	e.Recompute()
}

func sanitizeGap(gap float64) float64 {
	if gap < 0 || math.IsNaN(gap) || math.IsInf(gap, 0) {
		return 0
	}
	return gap
}

// Recompute re-reads both widths. A missing, infinite or NaN measurement
// leaves the previous value untouched. After a successful update the
// container is asked for focus.
func (e *LayoutEstimator) Recompute() {
	if e.provider == nil {
		return
	}
	containerWidth, ok := e.provider.ContainerWidth()
	if !ok || !finiteWidth(containerWidth) {
		return
	}
	itemWidth, ok := e.provider.ItemWidth()
	if !ok || !finiteWidth(itemWidth) {
		return
	}

	perRow := ItemsPerRow(containerWidth, itemWidth, e.gap)
	if perRow != e.itemsPerRow {
		log.Printf("layout: %d items per row (container=%.0f item=%.0f gap=%.0f)", perRow, containerWidth, itemWidth, e.gap)
	}
	e.itemsPerRow = perRow
	if e.focus != nil {
		e.focus()
	}
}

// Mount subscribes Recompute to sig. Mounting again first drops the old
// subscription.
func (e *LayoutEstimator) Mount(sig *ResizeSignal) {
	e.Teardown()
	e.unsubscribe = sig.Subscribe(e.Recompute)
}

// Teardown drops the resize subscription. Safe to call more than once.
func (e *LayoutEstimator) Teardown() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

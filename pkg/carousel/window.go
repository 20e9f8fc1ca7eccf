package carousel

// Window holds the logical item indices bound to the three pool slots.
type Window struct {
	Left   int
	Center int
	Right  int
}

// WindowFor computes the wraparound neighbor window for a page.
//
// The window always resolves to valid indices in [0, count): at the
// first page the left neighbor wraps to the last item, at the last
// page the right neighbor wraps to the first, and when no distinct
// neighbor exists (count of 1) the neighbor slots collapse onto the
// center. A count of zero or less yields the zero window; callers
// skip slot rebinding entirely in that state.
func WindowFor(current, count int) Window {
	if count <= 0 {
		return Window{}
	}
	w := Window{Left: current, Center: current, Right: current}

	switch {
	case current == 0:
		w.Left = count - 1
	case current-1 >= 0:
		w.Left = current - 1
	}

	switch {
	case current == 0 && count > 1:
		w.Right = 1
	case current == count-1:
		w.Right = 0
	case current+1 < count:
		w.Right = current + 1
	}

	return w
}

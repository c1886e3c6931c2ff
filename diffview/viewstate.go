package diffview

// Key is a pan direction understood by the view state.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// ViewState is the scroll cursor: X selects the sample window, Y the first
// visible channel row. Both are unbounded and wrapped into range at draw
// time, never here.
type ViewState struct {
	X int
	Y int
}

// Move applies one pan step and reports whether the key was handled.
func (st *ViewState) Move(k Key) bool {
	switch k {
	case KeyLeft:
		st.X--
	case KeyRight:
		st.X++
	case KeyUp:
		st.Y--
	case KeyDown:
		st.Y++
	default:
		return false
	}
	return true
}

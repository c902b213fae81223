package bounce

// Event is an input consumed by Engine.Handle.
type Event interface {
	event()
}

type (
	ChangeColor     struct{}
	ChangeSize      struct{}
	ToggleEasterEgg struct{}
	Quit            struct{}
	Tick            struct{}

	// Resize reports new terminal dimensions in cells.
	Resize struct {
		Width  int
		Height int
	}
)

func (ChangeColor) event()     {}
func (ChangeSize) event()      {}
func (ToggleEasterEgg) event() {}
func (Quit) event()            {}
func (Tick) event()            {}
func (Resize) event()          {}

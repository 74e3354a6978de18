package board

// EmptySpace - a space that never contains an element. Zero storage; used
// where occupancy is structurally guaranteed never to change, e.g. masked-out
// cells. Construction and rendering only, storing state is not expressible.
type EmptySpace struct{}

var _ Cell = EmptySpace{}

// NewEmptySpace - creates the always-empty space.
func NewEmptySpace() EmptySpace {
	return EmptySpace{}
}

func (EmptySpace) IsEmpty() bool {
	return true
}

func (EmptySpace) String() string {
	return "| |"
}

package core

// Cell is a single board square: either empty or holding one player's chip.
// The zero value is an empty cell.
type Cell struct {
	owner  PlayerID
	filled bool
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Owned returns a cell holding a chip of the given player.
func Owned(id PlayerID) Cell {
	return Cell{owner: id, filled: true}
}

// IsEmpty reports whether the cell holds no chip.
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Owner returns the player whose chip occupies the cell.
// The second result is false for an empty cell.
func (c Cell) Owner() (PlayerID, bool) {
	return c.owner, c.filled
}

// OwnedBy reports whether the cell holds a chip of the given player.
func (c Cell) OwnedBy(id PlayerID) bool {
	return c.filled && c.owner == id
}

// SameOwner reports whether both cells hold chips of the same player.
func (c Cell) SameOwner(other Cell) bool {
	return c.filled && other.filled && c.owner == other.owner
}

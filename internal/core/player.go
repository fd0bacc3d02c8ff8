package core

import "fmt"

// PlayerID identifies a participant. IDs are unique within a game roster.
type PlayerID int

// String returns "P<id>".
func (id PlayerID) String() string {
	return fmt.Sprintf("P%d", int(id))
}

// Player is a participant in a game. Turn order follows roster order.
type Player struct {
	ID    PlayerID
	Name  string
	Color Color
}

// DisplayName returns the player's name, or its ID when unnamed.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID.String()
}

// IndexOf returns the roster position of the player with the given ID,
// or -1 if no such player exists.
func IndexOf(players []Player, id PlayerID) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// DefaultPlayers builds a roster of n players with sequential IDs starting
// at 1, default names and the chip colours from ChipColors.
func DefaultPlayers(n int) []Player {
	colors := ChipColors()
	players := make([]Player, n)
	for i := range players {
		players[i] = Player{
			ID:    PlayerID(i + 1),
			Name:  fmt.Sprintf("Player %d", i+1),
			Color: colors[i%len(colors)],
		}
	}
	return players
}

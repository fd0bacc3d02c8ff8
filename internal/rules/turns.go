package rules

import "fmt"

// RemainingMovesFor returns how many of the totalEmpty cells the player at
// roster index playerIndex gets to fill if play continues until the board is
// full, with nextPlayerIndex moving first. Each player gets
// totalEmpty/playerCount moves; the first totalEmpty%playerCount players in
// rotation order starting from nextPlayerIndex get one more.
func RemainingMovesFor(playerIndex, totalEmpty, playerCount, nextPlayerIndex int) int {
	if playerCount < 1 {
		panic(fmt.Sprintf("rules: player count %d must be positive", playerCount))
	}
	if playerIndex < 0 || playerIndex >= playerCount || nextPlayerIndex < 0 || nextPlayerIndex >= playerCount {
		panic(fmt.Sprintf("rules: player index %d or next index %d outside [0, %d)",
			playerIndex, nextPlayerIndex, playerCount))
	}
	if totalEmpty <= 0 {
		return 0
	}

	moves := totalEmpty / playerCount
	if (playerIndex-nextPlayerIndex+playerCount)%playerCount < totalEmpty%playerCount {
		moves++
	}
	return moves
}

// turnClock tracks the round-robin rotation as of one board snapshot.
// Players are addressed by roster index.
type turnClock struct {
	players int // Size of the rotation
	played  int // Moves made so far
	empty   int // Empty cells left
}

// next returns the roster index of the player due to move.
func (c turnClock) next() int {
	return c.played % c.players
}

// remaining returns the player's move budget from now until the board fills.
func (c turnClock) remaining(p int) int {
	return c.remainingAsOf(p, 0)
}

// remainingAsOf returns the player's move budget once ahead more moves have
// been made by anyone.
func (c turnClock) remainingAsOf(p, ahead int) int {
	return RemainingMovesFor(p, c.empty-ahead, c.players, (c.next()+ahead)%c.players)
}

// movesSinceLastTurnOf returns how many moves other players have made since
// player p last moved, assuming at least one full rotation has been played.
func (c turnClock) movesSinceLastTurnOf(p int) int {
	return (c.next() - p - 1 + c.players) % c.players
}

// movesUntilTurnOf returns how many moves are made before player p moves next.
func (c turnClock) movesUntilTurnOf(p int) int {
	return c.players - 1 - c.movesSinceLastTurnOf(p)
}

// firstTurnAtOrAfter returns the smallest offset >= minOffset, counted in
// moves from now, at which player p is the one moving.
func (c turnClock) firstTurnAtOrAfter(p, minOffset int) int {
	wait := c.movesUntilTurnOf(p)
	if minOffset <= wait {
		return wait
	}
	rounds := (minOffset - wait + c.players - 1) / c.players
	return wait + rounds*c.players
}

package solver

import "github.com/ravenmoor/mazebot/maze"

// Bot is where the search currently is: a single position plus facing
// direction. It performs no validation of its own; the Stepper verifies a
// destination is in bounds and open before calling Advance, which keeps Bot
// a pure value holder.
type Bot struct {
	Pos    maze.Position
	Facing maze.Direction
}

// Advance turns the bot to face d and moves it one unit displacement in
// that direction. The caller must have verified the destination.
func (b *Bot) Advance(d maze.Direction) {
	b.Facing = d
	b.Pos = b.Pos.Add(d)
}

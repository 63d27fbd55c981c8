// Package game implements the falling-block simulation: the active
// tetromino, collision against the bordered field, locking, line clearing
// and scoring, and the Playing/GameOver/Win state machine.
//
// A Game is driven one tick at a time by a frontend:
//
//	g, err := game.New(notifier)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for g.Step(readCommand(), tick) {
//		draw(g)
//	}
//
// Step applies at most one Command and then advances gravity by the given
// amount of virtual time, so a Game never reads the wall clock and can be
// stepped deterministically in tests. Frontends read the state back through
// Field, Piece, Next, Score, State and Visible and never mutate it. Engine
// events (lines cleared, game over, win, music start) are delivered to the
// Notifier passed to New.
package game

package game

// lineScore is the score for clearing n lines with a single piece.
var lineScore = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

// LineScore returns the points awarded for clearing n lines at once.
func LineScore(n int) int {
	return lineScore[n]
}

// clearLines scores and removes the rows completed by the last lock.
func (g *Game) clearLines() {
	rows := g.field.CompletedRows()
	if len(rows) == 0 {
		return
	}
	g.notify(Event{Kind: EventLinesCleared, Lines: len(rows)})
	g.addScore(LineScore(len(rows)))
	g.field.Collapse(rows)
}

// addScore adds points, capping the score at MaxScore. Hitting the cap wins.
func (g *Game) addScore(points int) {
	score := g.score + points
	if score >= MaxScore {
		g.score = MaxScore
		g.state = Win
		g.notify(Event{Kind: EventWin})
		return
	}
	g.score = score
}

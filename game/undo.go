package game

// pushUndo snapshots the current state before a mutating Play. Snapshots
// are whole-state value copies, not deltas: forced assignment, void
// inference, and card movement each touch several fields in one Play, and
// the state is small (a handful of fixed-size arrays plus a 4-card
// trick), so there is nothing to gain from a delta encoding.
func (g *Game) pushUndo() {
	g.undo = append(g.undo, undoEntry{state: g.State, historyLen: len(g.history)})
}

// Undo restores the state before the most recent Play. Returns false
// (state unchanged) if there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.undo) == 0 {
		return false
	}
	n := len(g.undo) - 1
	entry := g.undo[n]
	g.undo = g.undo[:n]

	g.redo = append(g.redo, undoEntry{state: g.State, historyLen: len(g.history)})
	g.State = entry.state
	g.history = g.history[:entry.historyLen]
	return true
}

// Redo re-applies the most recently undone Play. Returns false (state
// unchanged) if there is nothing to redo. Any call to Play clears the
// redo stack.
func (g *Game) Redo() bool {
	if len(g.redo) == 0 {
		return false
	}
	n := len(g.redo) - 1
	entry := g.redo[n]
	g.redo = g.redo[:n]

	g.undo = append(g.undo, undoEntry{state: g.State, historyLen: len(g.history)})
	g.State = entry.state
	g.history = g.history[:entry.historyLen]
	return true
}

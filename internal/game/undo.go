package game

const maxUndoStack = 50

// UndoState captures one mapping edit so it can be reverted.
type UndoState struct {
	Source string
	Prev   string
	Had    bool
}

// pushUndo records the current binding for a source bone before an edit.
func (e *Editor) pushUndo(source string) {
	prev, had := e.session.Mapping[source]
	state := UndoState{Source: source, Prev: prev, Had: had}

	// Cap stack size
	if len(e.undoStack) >= maxUndoStack {
		e.undoStack = e.undoStack[1:]
	}
	e.undoStack = append(e.undoStack, state)
}

// undo restores the last recorded mapping edit.
func (e *Editor) undo() {
	if len(e.undoStack) == 0 {
		return
	}
	state := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]

	if state.Had {
		e.session.Mapping[state.Source] = state.Prev
	} else {
		delete(e.session.Mapping, state.Source)
	}
	e.session.MappingChanged.Invoke()
	e.setMsg("Undid mapping edit for %s", state.Source)
}

package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== FIND ACTIONS =====

type FindStartAction struct{}
type FindCharAction struct {
	Char rune
}
type FindBackspaceAction struct{}
type FindSubmitAction struct{}
type FindCancelAction struct{}
type FindNextAction struct{}
type FindPrevAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction is handled by the application, not the reducer.
type SuspendAction struct{}

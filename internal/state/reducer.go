package state

import (
	"fmt"

	"go.trai.ch/zerr"
)

// ErrUnknownAction is returned by Reduce for actions it cannot apply.
var ErrUnknownAction = zerr.New("unknown action")

// StateReducer applies actions to a ViewState.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state and returns the updated state.
func (r *StateReducer) Reduce(state *ViewState, action Action) (*ViewState, error) {
	switch a := action.(type) {

	// ===== SCROLL =====

	case ScrollUpAction:
		state.scrollBy(-1)
		return state, nil

	case ScrollDownAction:
		state.scrollBy(1)
		return state, nil

	case ScrollPageUpAction:
		state.scrollBy(-pageSize(state))
		return state, nil

	case ScrollPageDownAction:
		state.scrollBy(pageSize(state))
		return state, nil

	case ScrollToStartAction:
		state.ScrollOffset = 0
		return state, nil

	case ScrollToEndAction:
		state.ScrollOffset = state.maxScrollOffset()
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampScroll()
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil

	// ===== FIND =====

	case FindStartAction:
		state.FindActive = true
		state.FindQuery = ""
		return state, nil

	case FindCharAction:
		if state.FindActive {
			state.FindQuery += string(a.Char)
		}
		return state, nil

	case FindBackspaceAction:
		if state.FindActive && state.FindQuery != "" {
			runes := []rune(state.FindQuery)
			state.FindQuery = string(runes[:len(runes)-1])
		}
		return state, nil

	case FindSubmitAction:
		state.FindActive = false
		state.Matches = findMatches(state.Lines, state.FindQuery)
		state.MatchIndex = firstMatchFrom(state.Matches, state.ScrollOffset)
		if line := state.CurrentMatch(); line >= 0 {
			state.revealLine(line)
		}
		return state, nil

	case FindCancelAction:
		state.FindActive = false
		state.FindQuery = ""
		state.Matches = nil
		state.MatchIndex = 0
		return state, nil

	case FindNextAction:
		state.stepMatch(1)
		return state, nil

	case FindPrevAction:
		state.stepMatch(-1)
		return state, nil

	// ===== APPLICATION =====

	case QuitAction:
		state.Quit = true
		return state, nil

	case SuspendAction:
		return state, nil

	default:
		return state, zerr.With(zerr.Wrap(ErrUnknownAction, fmt.Sprintf("reduce %T", action)), "action", fmt.Sprintf("%T", action))
	}
}

func pageSize(state *ViewState) int {
	if lines := state.VisibleLines(); lines > 0 {
		return lines
	}
	return 1
}

func (s *ViewState) stepMatch(delta int) {
	if len(s.Matches) == 0 {
		return
	}
	s.MatchIndex = (s.MatchIndex + delta + len(s.Matches)) % len(s.Matches)
	s.revealLine(s.Matches[s.MatchIndex])
}

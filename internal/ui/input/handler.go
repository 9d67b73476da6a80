package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.ViewState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.ViewState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// once the event asks the viewer to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ev.Key() == tcell.KeyCtrlZ {
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	helpVisible := ih.state != nil && ih.state.HelpVisible
	findActive := ih.state != nil && ih.state.FindActive

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if findActive {
		return ih.processFindKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if ih.state != nil && ih.state.FindQuery != "" {
			ih.actionChan <- statepkg.FindCancelAction{}
			return true
		}
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollUpAction{}
	case tcell.KeyDown, tcell.KeyEnter:
		ih.actionChan <- statepkg.ScrollDownAction{}
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.ScrollDownAction{}
	case 'k':
		ih.actionChan <- statepkg.ScrollUpAction{}
	case ' ', 'f':
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case 'b':
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case 'g':
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case 'G':
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case '/':
		ih.actionChan <- statepkg.FindStartAction{}
	case 'n':
		ih.actionChan <- statepkg.FindNextAction{}
	case 'N':
		ih.actionChan <- statepkg.FindPrevAction{}
	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
	}
	return true
}

func (ih *InputHandler) processFindKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FindCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.FindSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FindBackspaceAction{}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			ih.actionChan <- statepkg.FindCharAction{Char: r}
		}
	}
	return true
}

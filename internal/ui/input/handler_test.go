package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
)

func expectAction[T statepkg.Action](t *testing.T, actionChan chan statepkg.Action) {
	t.Helper()
	select {
	case action := <-actionChan:
		if _, ok := action.(T); !ok {
			var want T
			t.Fatalf("Expected %T, got %T", want, action)
		}
	default:
		var want T
		t.Fatalf("Expected %T to be emitted", want)
	}
}

func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		check func(*testing.T, chan statepkg.Action)
	}{
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', 0), expectAction[statepkg.ScrollDownAction]},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', 0), expectAction[statepkg.ScrollUpAction]},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, 0), expectAction[statepkg.ScrollDownAction]},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, 0), expectAction[statepkg.ScrollUpAction]},
		{"pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, 0), expectAction[statepkg.ScrollPageDownAction]},
		{"pgup", tcell.NewEventKey(tcell.KeyPgUp, 0, 0), expectAction[statepkg.ScrollPageUpAction]},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', 0), expectAction[statepkg.ScrollPageDownAction]},
		{"g", tcell.NewEventKey(tcell.KeyRune, 'g', 0), expectAction[statepkg.ScrollToStartAction]},
		{"G", tcell.NewEventKey(tcell.KeyRune, 'G', 0), expectAction[statepkg.ScrollToEndAction]},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, 0), expectAction[statepkg.ScrollToStartAction]},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, 0), expectAction[statepkg.ScrollToEndAction]},
		{"slash", tcell.NewEventKey(tcell.KeyRune, '/', 0), expectAction[statepkg.FindStartAction]},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', 0), expectAction[statepkg.FindNextAction]},
		{"N", tcell.NewEventKey(tcell.KeyRune, 'N', 0), expectAction[statepkg.FindPrevAction]},
		{"help", tcell.NewEventKey(tcell.KeyRune, '?', 0), expectAction[statepkg.HelpToggleAction]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionChan := make(chan statepkg.Action, 1)
			handler := NewInputHandler(actionChan)
			handler.SetState(&statepkg.ViewState{})

			if !handler.ProcessEvent(tt.event) {
				t.Fatalf("navigation key should not quit")
			}
			tt.check(t, actionChan)
		})
	}
}

func TestQuitKeys(t *testing.T) {
	events := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', 0),
		tcell.NewEventKey(tcell.KeyEscape, 0, 0),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, 0),
	}
	for _, ev := range events {
		actionChan := make(chan statepkg.Action, 1)
		handler := NewInputHandler(actionChan)
		handler.SetState(&statepkg.ViewState{})

		if handler.ProcessEvent(ev) {
			t.Fatalf("expected %q to quit", ev.Name())
		}
		expectAction[statepkg.QuitAction](t, actionChan)
	}
}

func TestEscapeHidesHelpBeforeQuitting(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.ViewState{HelpVisible: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0)) {
		t.Fatalf("escape with help visible should not quit")
	}
	expectAction[statepkg.HelpHideAction](t, actionChan)
}

func TestEscapeClearsFindBeforeQuitting(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.ViewState{FindQuery: "foo"})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0)) {
		t.Fatalf("escape with an active query should not quit")
	}
	expectAction[statepkg.FindCancelAction](t, actionChan)
}

func TestFindPromptCapturesRunes(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.ViewState{FindActive: true})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	select {
	case action := <-actionChan:
		char, ok := action.(statepkg.FindCharAction)
		if !ok || char.Char != 'q' {
			t.Fatalf("Expected FindCharAction{'q'}, got %#v", action)
		}
	default:
		t.Fatal("Expected FindCharAction")
	}

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	expectAction[statepkg.FindSubmitAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	expectAction[statepkg.FindBackspaceAction](t, actionChan)
}

func TestResizeEmitsAction(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventResize(120, 40))
	select {
	case action := <-actionChan:
		resize, ok := action.(statepkg.ResizeAction)
		if !ok || resize.Width != 120 || resize.Height != 40 {
			t.Fatalf("unexpected action %#v", action)
		}
	default:
		t.Fatal("Expected ResizeAction")
	}
}

package state

import (
	"github.com/kk-code-lab/mdbullet/internal/markdown"
)

// Rows taken by the header and the footer.
const chromeRows = 2

// ViewState is the single source of truth for the interactive viewer.
type ViewState struct {
	Title string
	Lines []markdown.Line

	// Viewport
	ScrollOffset int
	ScreenWidth  int
	ScreenHeight int

	// Overlays
	HelpVisible bool

	// Find
	FindActive bool
	FindQuery  string
	Matches    []int // Line indices containing FindQuery
	MatchIndex int

	Quit bool
}

// NewViewState returns a state showing lines from the top.
func NewViewState(title string, lines []markdown.Line) *ViewState {
	return &ViewState{Title: title, Lines: lines}
}

// VisibleLines is the number of document rows that fit on screen.
func (s *ViewState) VisibleLines() int {
	rows := s.ScreenHeight - chromeRows
	if rows < 0 {
		return 0
	}
	return rows
}

// CurrentMatch returns the line index of the selected match, or -1.
func (s *ViewState) CurrentMatch() int {
	if s.MatchIndex < 0 || s.MatchIndex >= len(s.Matches) {
		return -1
	}
	return s.Matches[s.MatchIndex]
}

func (s *ViewState) maxScrollOffset() int {
	limit := len(s.Lines) - s.VisibleLines()
	if limit < 0 {
		return 0
	}
	return limit
}

func (s *ViewState) scrollBy(delta int) {
	s.ScrollOffset += delta
	s.clampScroll()
}

func (s *ViewState) clampScroll() {
	if s.ScrollOffset > s.maxScrollOffset() {
		s.ScrollOffset = s.maxScrollOffset()
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// revealLine scrolls the minimum amount needed to show line idx.
func (s *ViewState) revealLine(idx int) {
	visible := s.VisibleLines()
	if visible <= 0 {
		return
	}
	switch {
	case idx < s.ScrollOffset:
		s.ScrollOffset = idx
	case idx >= s.ScrollOffset+visible:
		s.ScrollOffset = idx - visible + 1
	}
	s.clampScroll()
}

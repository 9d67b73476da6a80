package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.ViewState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.ViewState) []string {
	if state == nil {
		return nil
	}
	if state.FindActive {
		return []string{"↵: find", "Esc: cancel"}
	}

	segments := []string{"↑↓/jk: scroll", "Pg: page", "/: find"}
	if len(state.Matches) > 0 {
		segments = append(segments, "n/N: next/prev")
	}
	return append(segments, "?: help", "q: quit")
}

package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(40); got != 34 {
		t.Errorf("ContentHeight(40) = %d, want 34", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestCompactThresholds(t *testing.T) {
	// Content height excludes the header and footer.
	if IsCompactHeight(ContentHeight(CompactHeightThreshold)) {
		t.Error("a terminal at the threshold is not compact")
	}
	if !IsCompactHeight(ContentHeight(CompactHeightThreshold - 1)) {
		t.Error("a terminal under the threshold is compact")
	}
	if !IsCompactWidth(CompactWidthThreshold-1) || IsCompactWidth(CompactWidthThreshold) {
		t.Error("width threshold misplaced")
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Science · Easy", 3, 12, 100)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 100)
	if lipgloss.Height(header) != HeaderHeight || lipgloss.Height(footer) != FooterHeight {
		t.Fatalf("header/footer heights = %d/%d", lipgloss.Height(header), lipgloss.Height(footer))
	}
	frame := RenderFrame(header, "body", footer, 100, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
	if !strings.Contains(frame, "💡 3") || !strings.Contains(frame, "★ 12 best") {
		t.Error("header lost the hint count or best score")
	}
}

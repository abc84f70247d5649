package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/toolradar/pkg/radar"
)

const (
	dotRadius     = 6.0
	dotFontSize   = 11.0
	labelFontSize = 13.0
	titleFontSize = 20.0
	fontFamily    = "Helvetica,Arial,sans-serif"

	popupWidth    = 220.0
	popupPad      = 10.0
	popupLineH    = 15.0
	popupWrapCols = 34
)

// Themed renders the radar using a configurable color palette.
type Themed struct {
	Theme Theme
}

func (s Themed) RenderDefs(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		width, height, s.Theme.Background)
}

func (s Themed) RenderSector(buf *bytes.Buffer, sec Sector) {
	fill := s.Theme.SectorFills[radar.Category(sec.Category)]
	if fill == "" {
		fill = s.Theme.Background
	}
	fmt.Fprintf(buf, `  <path class="ring" id="ring-%s" d="%s" fill="%s"/>`+"\n",
		esc(sec.Category), sec.Path, fill)
	if sec.ArcPath != "" {
		fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			sec.ArcPath, s.Theme.ArcStroke)
	}
}

func (s Themed) RenderRingLabel(buf *bytes.Buffer, l RingLabel) {
	label := l.Label
	if label == "" {
		label = s.Theme.Labels[radar.Category(l.Category)]
	}
	if label == "" {
		label = strings.ToUpper(l.Category)
	}
	fmt.Fprintf(buf, `  <text class="ring-label" x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.0f" font-weight="bold" fill="%s">%s</text>`+"\n",
		l.X, l.Y, fontFamily, labelFontSize, s.Theme.RingLabel, esc(label))
}

func (s Themed) RenderDot(buf *bytes.Buffer, d Dot) {
	fill := s.Theme.DotFills[radar.Category(d.Category)]
	if fill == "" {
		fill = s.Theme.DotText
	}
	circle := fmt.Sprintf(`<circle class="dot" id="dot-%s" data-label="%s" cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`,
		esc(d.ID), esc(d.Label), d.X, d.Y, dotRadius, fill, s.Theme.DotStroke)
	if d.URL != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">%s</a>`+"\n", esc(d.URL), circle)
		return
	}
	fmt.Fprintf(buf, "  %s\n", circle)
}

func (s Themed) RenderDotText(buf *bytes.Buffer, d Dot) {
	fmt.Fprintf(buf, `  <g class="dot-text" data-dot="%s">`, esc(d.ID))
	fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.0f" fill="%s">%s</text>`,
		d.X, d.Y-dotRadius-4, fontFamily, dotFontSize, s.Theme.DotText, esc(d.Label))
	buf.WriteString("</g>\n")
}

func (s Themed) RenderPopup(buf *bytes.Buffer, d Dot) {
	if d.Popup == nil {
		return
	}
	lines := popupLines(d)
	height := popupPad*2 + float64(len(lines))*popupLineH

	fmt.Fprintf(buf, `  <g class="popup" data-for="%s" visibility="hidden">`+"\n", esc(d.ID))
	fmt.Fprintf(buf, `    <rect x="0" y="0" width="%.0f" height="%.0f" rx="6" fill="%s" stroke="%s"/>`+"\n",
		popupWidth, height, s.Theme.PopupFill, s.Theme.PopupStroke)
	for i, line := range lines {
		y := popupPad + float64(i+1)*popupLineH - 4
		weight := ""
		if i == 0 {
			weight = ` font-weight="bold"`
		}
		fmt.Fprintf(buf, `    <text x="%.0f" y="%.1f" font-family="%s" font-size="11"%s fill="%s">%s</text>`+"\n",
			popupPad, y, fontFamily, weight, s.Theme.PopupText, esc(line))
	}
	buf.WriteString("  </g>\n")
}

func (s Themed) RenderTitle(buf *bytes.Buffer, text string, x, y float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" font-weight="bold" fill="%s">%s</text>`+"\n",
		x, y, fontFamily, titleFontSize, s.Theme.TitleColor, esc(text))
}

// popupLines flattens popup content into display lines, title first.
func popupLines(d Dot) []string {
	p := d.Popup
	lines := []string{d.Label}
	lines = append(lines, wrap(p.Description, popupWrapCols)...)
	if p.TeamPosition != "" {
		lines = append(lines, "Team: "+truncate(p.TeamPosition, popupWrapCols))
	}
	if p.AIPosition != "" {
		lines = append(lines, "AI: "+truncate(p.AIPosition, popupWrapCols))
	}
	if p.Reviewer != "" {
		lines = append(lines, "Reviewed by "+p.Reviewer)
	}
	return lines
}

// wrap splits text into lines of at most cols characters, breaking on spaces.
func wrap(text string, cols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > cols {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-2] + ".."
}

func esc(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

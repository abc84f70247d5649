package radarview

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/toolradar/pkg/radar"
	"github.com/matzehuels/toolradar/pkg/radar/geometry"
	"github.com/matzehuels/toolradar/pkg/render/radarview/styles"
)

const dotInteractionCSS = `
    .dot { transition: stroke-width 0.15s ease; }
    .dot.highlight { stroke-width: 3; }
    .dot-text { transition: transform 0.15s ease; transform-origin: center; transform-box: fill-box; }
    .dot-text.highlight { transform: scale(1.1); font-weight: bold; }
    a { cursor: pointer; }`

const dotInteractionJS = `
    function highlight(ids) {
      document.querySelectorAll('.dot').forEach(d => d.classList.toggle('highlight', ids.includes(d.id.replace('dot-', ''))));
      document.querySelectorAll('.dot-text').forEach(t => t.classList.toggle('highlight', ids.includes(t.dataset.dot)));
    }
    function clearHighlight() {
      document.querySelectorAll('.dot, .dot-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.dot').forEach(el => {
      el.addEventListener('mouseenter', () => highlight([el.id.replace('dot-', '')]));
      el.addEventListener('mouseleave', clearHighlight);
    });`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	popups bool
	search bool
}

// WithStyle sets the visual style (default light).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithPopups enables hover popups with tool details.
func WithPopups() SVGOption { return func(r *svgRenderer) { r.popups = true } }

// WithSearch embeds an interactive filter box into the SVG.
func WithSearch() SVGOption { return func(r *svgRenderer) { r.search = true } }

// RenderSVG renders a radar layout as an interactive SVG document.
func RenderSVG(l *radar.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	dots := buildDots(l, r.popups)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf, l.Width, l.Height)
	renderRings(&buf, &r, l)
	renderContent(&buf, &r, dots)

	if l.Title != "" {
		r.style.RenderTitle(&buf, l.Title, 24, 40)
	}

	renderDotInteraction(&buf)

	if r.search {
		renderSearchBox(&buf, l.Width)
	}

	if r.popups {
		for _, d := range dots {
			r.style.RenderPopup(&buf, d)
		}
		renderPopupScript(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Light()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderRings draws the category band sectors and their headings,
// innermost ring first.
func renderRings(buf *bytes.Buffer, r *svgRenderer, l *radar.Layout) {
	cx, cy := l.CenterX, l.CenterY
	available := math.Min(cx, cy)
	last := len(l.Rings.Rings) - 1

	for i, ring := range l.Rings.Rings {
		open := l.Rings.OpenOutermost && i == last

		outer := ring.Outer
		if open && available > outer {
			outer = available
		}

		sec := styles.Sector{
			Category: string(ring.Category),
			Band:     i,
			Path:     geometry.SectorPath(cx, cy, ring.Inner, outer),
		}
		if !open {
			sec.ArcPath = geometry.ArcPath(cx, cy, ring.Outer)
		}
		r.style.RenderSector(buf, sec)
	}

	for i, ring := range l.Rings.Rings {
		open := l.Rings.OpenOutermost && i == last

		var x, y float64
		if open {
			x, y = geometry.OpenLabelAnchor(cx, cy, ring.Inner, available)
		} else {
			x, y = geometry.LabelAnchor(cx, cy, ring.Inner, ring.Outer)
		}
		r.style.RenderRingLabel(buf, styles.RingLabel{
			Category: string(ring.Category),
			X:        x, Y: y,
		})
	}
}

func renderContent(buf *bytes.Buffer, r *svgRenderer, dots []styles.Dot) {
	for _, d := range dots {
		r.style.RenderDot(buf, d)
	}
	for _, d := range dots {
		r.style.RenderDotText(buf, d)
	}
}

func renderDotInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", dotInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", dotInteractionJS)
}

func buildDots(l *radar.Layout, withPopups bool) []styles.Dot {
	dots := make([]styles.Dot, 0, len(l.Placements))
	for _, p := range l.Placements {
		d := styles.Dot{
			ID:       p.ID,
			Label:    p.Title,
			Category: string(p.Category),
			Band:     p.Category.Index(),
			X:        p.Position.X,
			Y:        p.Position.Y,
			URL:      p.URL,
		}
		if withPopups {
			d.Popup = extractPopupData(p.Tool)
		}
		dots = append(dots, d)
	}
	return dots
}

func extractPopupData(t radar.Tool) *styles.PopupData {
	p := &styles.PopupData{
		Description:  t.Description,
		URL:          t.URL,
		TeamPosition: t.TeamPosition,
		AIPosition:   t.AIPosition,
	}
	if t.Reviewer != nil {
		p.Reviewer = t.Reviewer.Name
	}
	return p
}

package radarview

import (
	"bytes"
	"fmt"
)

const (
	searchCSS = `
    .search-input { font: 12px Helvetica,Arial,sans-serif; width: 160px; padding: 4px 6px; border: 1px solid #9e9e9e; border-radius: 4px; box-sizing: border-box; }
    .dot.dimmed, .dot-text.dimmed { opacity: 0.15; }`

	searchJS = `
    const searchInput = document.querySelector('.search-input');
    if (searchInput) {
      searchInput.addEventListener('input', () => {
        const q = searchInput.value.trim().toLowerCase();
        const match = (id, label) => q === '' || id.includes(q) || label.includes(q);
        document.querySelectorAll('.dot').forEach(d => {
          const id = d.id.replace('dot-', '').toLowerCase();
          const label = (d.dataset.label || '').toLowerCase();
          d.classList.toggle('dimmed', !match(id, label));
        });
        document.querySelectorAll('.dot-text').forEach(t => {
          const id = t.dataset.dot.toLowerCase();
          const label = t.textContent.toLowerCase();
          t.classList.toggle('dimmed', !match(id, label));
        });
      });
    }`

	searchBoxWidth = 180.0
)

// renderSearchBox embeds an HTML input via foreignObject in the top-right
// corner. Filtering dims dots and labels whose ID and title both miss the
// query, so a title-only match keeps the dot and its label visible together.
func renderSearchBox(buf *bytes.Buffer, frameWidth float64) {
	x := frameWidth - searchBoxWidth - 10
	fmt.Fprintf(buf, `  <foreignObject x="%.1f" y="10" width="%.0f" height="30">`, x, searchBoxWidth)
	buf.WriteString(`<input xmlns="http://www.w3.org/1999/xhtml" class="search-input" type="text" placeholder="Filter tools"/>`)
	buf.WriteString("</foreignObject>\n")
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", searchCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", searchJS)
}

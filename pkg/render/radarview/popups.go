package radarview

import (
	"bytes"
	"fmt"
)

const (
	popupCSS = `
    .popup { pointer-events: none; transition: opacity 0.15s ease, transform 0.1s ease; }
    .popup[visibility="hidden"] { opacity: 0; }
    .popup[visibility="visible"] { opacity: 1; }`

	popupJS = `
    const svg = document.querySelector('svg');
    const vb = svg.viewBox.baseVal;
    document.querySelectorAll('.dot').forEach(el => {
      const id = el.id.replace('dot-', '');
      const popup = document.querySelector('.popup[data-for="' + id + '"]');
      if (!popup) return;
      el.style.cursor = 'pointer';
      el.addEventListener('mouseenter', () => {
        const dotBox = el.getBBox();
        const popupBox = popup.getBBox();
        let x = dotBox.x + dotBox.width/2 - popupBox.width/2;
        let y = dotBox.y + dotBox.height + 12;
        if (y + popupBox.height > vb.y + vb.height - 10) y = dotBox.y - popupBox.height - 8;
        if (y < vb.y + 10) y = vb.y + 10;
        x = Math.max(vb.x + 10, Math.min(x, vb.x + vb.width - popupBox.width - 10));
        popup.setAttribute('transform', 'translate(' + x.toFixed(1) + ',' + y.toFixed(1) + ')');
        popup.setAttribute('visibility', 'visible');
      });
      el.addEventListener('mouseleave', () => popup.setAttribute('visibility', 'hidden'));
    });`
)

func renderPopupScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", popupCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", popupJS)
}

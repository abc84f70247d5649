// Package styles provides pluggable visual styles for radar rendering.
//
// A [Style] controls how ring sectors, category labels, tool dots, and hover
// popups are drawn. The built-in [Themed] implementation derives everything
// from a [Theme] palette; [Light] and [Dark] return the two shipped themes
// and [Parse] maps style names from flags or layouts to a Style.
//
// Custom palettes can be built by constructing a Theme directly:
//
//	style := styles.Themed{Theme: styles.Theme{
//	    Name:       "corporate",
//	    Background: "#fafafa",
//	    // ...
//	}}
package styles

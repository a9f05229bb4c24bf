package app

// Layout computes the height of each stacked region.
type Layout struct {
	Width         int
	HeaderHeight  int
	GalleryHeight int
	StatusHeight  int
	HelpHeight    int
	FooterHeight  int
}

// headerHeight is the title row, the bordered search row and the summary row.
const headerHeight = 5

// ComputeLayout splits totalHeight between header, gallery, status bar, the
// short help line and the footer.
func ComputeLayout(totalWidth, totalHeight int) Layout {
	// During live resizes some terminals momentarily report 0 (or even negative)
	// dimensions; clamp to avoid propagating invalid sizes into panels.
	if totalWidth < 1 {
		totalWidth = 1
	}

	l := Layout{
		Width:        totalWidth,
		HeaderHeight: headerHeight,
		StatusHeight: 1,
		HelpHeight:   1,
		FooterHeight: 1,
	}
	l.GalleryHeight = totalHeight - l.HeaderHeight - l.StatusHeight - l.HelpHeight - l.FooterHeight
	if l.GalleryHeight < 1 {
		l.GalleryHeight = 1
	}
	return l
}

// searchWidth leaves room for the mode toggle next to the search bar.
func searchWidth(totalWidth, toggleWidth int) int {
	w := totalWidth - toggleWidth - 2
	if w > 48 {
		w = 48
	}
	if w < 20 {
		w = 20
	}
	return w
}

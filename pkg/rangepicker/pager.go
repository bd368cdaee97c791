package rangepicker

import "time"

// InitialPage is the page index of anchor's month for a pager whose
// year range starts at yearMin. The extra -1 is kept for compatibility with
// previously stored page indexes: page 0 is February of yearMin.
func InitialPage(anchor time.Time, yearMin int) int {
	y, m, _ := anchor.UTC().Date()
	month := int(m) - 1
	return (y-yearMin)*12 + (month - 1)
}

// MonthForPage maps a page to the first day of its month. anchorMonth is
// zero-based and is the month shown on initialPage.
func MonthForPage(page, anchorMonth, anchorYear, initialPage int) time.Time {
	total := anchorMonth + (page - initialPage)

	year := anchorYear + floorDiv(total, 12)
	month := total % 12
	if month < 0 {
		month += 12
	}

	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

// PageForMonth is the inverse of MonthForPage for the same anchor.
func PageForMonth(month time.Time, anchorMonth, anchorYear, initialPage int) int {
	y, m, _ := month.UTC().Date()
	return initialPage + (y-anchorYear)*12 + (int(m) - 1) - anchorMonth
}

package records

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const dateLayout = "02 Jan 2006"

// NewLibrary lists every book and recorded lecture by subject.
func NewLibrary(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Subject", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Title", Width: 34},
		{Title: "Author / Length", Width: 22},
	}
	var rows []table.Row
	for _, s := range deps.Catalog.Subjects() {
		for _, b := range s.Books {
			rows = append(rows, table.Row{s.Name, "Book", b.Title, b.Author})
		}
		for _, v := range s.Videos {
			rows = append(rows, table.Row{s.Name, "Lecture", v.Title, v.Duration})
		}
	}

	r := newTableScreen(deps, "Library", cols, rows)
	books, videos := len(deps.Catalog.Books()), len(deps.Catalog.Videos())
	r.summary = func(pal theme.Palette) string {
		return dim(pal, fmt.Sprintf("%d books · %d recorded lectures", books, videos))
	}
	return r
}

// NewClinical shows the ward postings and their logbook state.
func NewClinical(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Department", Width: 22},
		{Title: "Shift", Width: 16},
		{Title: "Logbook", Width: 12},
	}
	duties := deps.Catalog.ClinicalDuties()
	rows := make([]table.Row, 0, len(duties))
	for _, d := range duties {
		rows = append(rows, table.Row{d.Date.Format(dateLayout), d.Department, d.Time, d.LogbookStatus})
	}

	r := newTableScreen(deps, "Clinical Duties", cols, rows)
	r.detail = func(i int) string {
		if i < 0 || i >= len(duties) || duties[i].Notes == "" {
			return ""
		}
		return "Notes: " + duties[i].Notes
	}
	return r
}

// NewCalendar lists academic events by date.
func NewCalendar(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Event", Width: 30},
		{Title: "Type", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Location", Width: 20},
	}
	events := deps.Catalog.CalendarEvents()
	rows := make([]table.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, table.Row{e.Date.Format(dateLayout), e.Title, string(e.Type), e.Status, e.Location})
	}

	r := newTableScreen(deps, "Academic Calendar", cols, rows)
	now := deps.Clock()
	r.summary = func(pal theme.Palette) string {
		upcoming := 0
		for _, e := range events {
			if !e.Date.Before(now.Truncate(24 * time.Hour)) {
				upcoming++
			}
		}
		return dim(pal, fmt.Sprintf("%d upcoming of %d events", upcoming, len(events)))
	}
	return r
}

// NewHostel shows the room allocation and the weekly mess menu.
func NewHostel(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Day", Width: 10},
		{Title: "Breakfast", Width: 20},
		{Title: "Lunch", Width: 20},
		{Title: "Dinner", Width: 22},
	}
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	rows := make([]table.Row, 0, len(days))
	for _, d := range days {
		meals := deps.Catalog.MessMenu(d)
		row := table.Row{d.String(), "", "", ""}
		for i := 0; i < len(meals) && i < 3; i++ {
			row[i+1] = meals[i]
		}
		rows = append(rows, row)
	}

	r := newTableScreen(deps, "Hostel", cols, rows)
	h := deps.Catalog.Hostel()
	today := deps.Clock().Weekday()
	r.summary = func(pal theme.Palette) string {
		lines := []string{
			fmt.Sprintf("Room %s · %s", h.RoomNumber, h.Block),
			"Roommates: " + strings.Join(h.Roommates, ", "),
			"Today's menu: " + strings.Join(deps.Catalog.MessMenu(today), " · "),
		}
		return dim(pal, strings.Join(lines, "\n"))
	}
	return r
}

// NewNotices lists notice-board posts, newest first, with the selected
// post's body below the table.
func NewNotices(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 10},
		{Title: "Title", Width: 32},
		{Title: "From", Width: 16},
	}
	notices := deps.Catalog.Notices()
	rows := make([]table.Row, 0, len(notices))
	for _, n := range notices {
		rows = append(rows, table.Row{n.Date.Format(dateLayout), n.Category, n.Title, n.Author})
	}

	r := newTableScreen(deps, "Notice Board", cols, rows)
	r.detail = func(i int) string {
		if i < 0 || i >= len(notices) {
			return ""
		}
		return notices[i].Content
	}
	return r
}

// NewFees shows the fee history and the outstanding balance.
func NewFees(deps screens.Deps) *TableScreen {
	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Item", Width: 30},
		{Title: "Amount", Width: 14},
		{Title: "Status", Width: 10},
	}
	fees := deps.Catalog.Fees()
	rows := make([]table.Row, 0, len(fees))
	var paid, due int
	for _, f := range fees {
		rows = append(rows, table.Row{f.Date.Format(dateLayout), f.Title, Rupees(f.Amount), f.Status})
		if strings.EqualFold(f.Status, "Paid") {
			paid += f.Amount
		} else {
			due += f.Amount
		}
	}

	r := newTableScreen(deps, "Fees", cols, rows)
	r.summary = func(pal theme.Palette) string {
		s := dim(pal, "Paid "+Rupees(paid)+" · ")
		if due > 0 {
			return s + theme.Pending.Render("Due "+Rupees(due))
		}
		return s + theme.Correct.Render("No dues")
	}
	return r
}

// Rupees formats an amount with Indian digit grouping, e.g. ₹1,50,000.
func Rupees(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprint(amount)
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		digits = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		return "-₹" + digits
	}
	return "₹" + digits
}

func dim(pal theme.Palette, s string) string {
	return lipgloss.NewStyle().Foreground(pal.TextDim).Render(s)
}

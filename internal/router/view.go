package router

// ViewID identifies one of the portal's top-level views.
type ViewID string

const (
	ViewDashboard   ViewID = "dashboard"
	ViewSubjects    ViewID = "subjects"
	ViewLibrary     ViewID = "library"
	ViewSimulation  ViewID = "simulation"
	ViewClinical    ViewID = "clinical"
	ViewCalendar    ViewID = "calendar"
	ViewHostel      ViewID = "hostel"
	ViewNotices     ViewID = "notices"
	ViewFees        ViewID = "fees"
	ViewPerformance ViewID = "performance"
	ViewProfile     ViewID = "profile"
	ViewSettings    ViewID = "settings"
	ViewDatabase    ViewID = "database"
	ViewInquiries   ViewID = "inquiries"
)

// allViews is the closed set, in sidebar order.
var allViews = []ViewID{
	ViewDashboard,
	ViewSubjects,
	ViewLibrary,
	ViewSimulation,
	ViewClinical,
	ViewCalendar,
	ViewHostel,
	ViewNotices,
	ViewFees,
	ViewPerformance,
	ViewProfile,
	ViewSettings,
	ViewDatabase,
	ViewInquiries,
}

var viewLabels = map[ViewID]string{
	ViewDashboard:   "Dashboard",
	ViewSubjects:    "Subjects",
	ViewLibrary:     "Library",
	ViewSimulation:  "Simulation",
	ViewClinical:    "Clinical Duties",
	ViewCalendar:    "Calendar",
	ViewHostel:      "Hostel",
	ViewNotices:     "Notice Board",
	ViewFees:        "Fees",
	ViewPerformance: "Performance",
	ViewProfile:     "Profile",
	ViewSettings:    "Settings",
	ViewDatabase:    "Database",
	ViewInquiries:   "Inquiries",
}

// AllViews returns every view id in sidebar order.
func AllViews() []ViewID {
	return append([]ViewID(nil), allViews...)
}

// Valid reports whether v is one of the known views.
func (v ViewID) Valid() bool {
	_, ok := viewLabels[v]
	return ok
}

// Label is the human-readable name of the view.
func (v ViewID) Label() string {
	if l, ok := viewLabels[v]; ok {
		return l
	}
	return viewLabels[ViewDashboard]
}

// ParseView maps s to a view id. Unknown ids fall back to the dashboard.
func ParseView(s string) ViewID {
	v := ViewID(s)
	if v.Valid() {
		return v
	}
	return ViewDashboard
}

package app

import (
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/screens/account"
	"github.com/saketh8887/medconnect/internal/screens/dashboard"
	"github.com/saketh8887/medconnect/internal/screens/database"
	"github.com/saketh8887/medconnect/internal/screens/inquiries"
	"github.com/saketh8887/medconnect/internal/screens/performance"
	"github.com/saketh8887/medconnect/internal/screens/records"
	"github.com/saketh8887/medconnect/internal/screens/simulation"
	"github.com/saketh8887/medconnect/internal/screens/subjects"
)

// plain wraps a constructor that needs no capabilities.
func plain[S screen.Screen](build func(screens.Deps) S, deps screens.Deps) router.Entry {
	return router.Entry{Factory: func(router.Capabilities) screen.Screen { return build(deps) }}
}

// registry maps every view to its screen.
func registry(deps screens.Deps) router.Registry {
	return router.Registry{
		router.ViewDashboard: {
			Needs:   router.CapNavigate,
			Factory: func(c router.Capabilities) screen.Screen { return dashboard.New(deps, c) },
		},
		router.ViewSubjects: {
			Needs:   router.CapBackToDashboard,
			Factory: func(c router.Capabilities) screen.Screen { return subjects.New(deps, c) },
		},
		router.ViewSimulation: {
			Needs:   router.CapBackToDashboard | router.CapTheme,
			Factory: func(c router.Capabilities) screen.Screen { return simulation.New(deps, c) },
		},
		router.ViewPerformance: {
			Needs:   router.CapBackToDashboard,
			Factory: func(c router.Capabilities) screen.Screen { return performance.New(deps, c) },
		},
		router.ViewInquiries: {
			Needs:   router.CapBackToDashboard,
			Factory: func(c router.Capabilities) screen.Screen { return inquiries.New(deps, c) },
		},
		router.ViewLibrary:  plain(records.NewLibrary, deps),
		router.ViewClinical: plain(records.NewClinical, deps),
		router.ViewCalendar: plain(records.NewCalendar, deps),
		router.ViewHostel:   plain(records.NewHostel, deps),
		router.ViewNotices:  plain(records.NewNotices, deps),
		router.ViewFees:     plain(records.NewFees, deps),
		router.ViewProfile:  plain(account.NewProfile, deps),
		router.ViewSettings: plain(account.NewSettings, deps),
		router.ViewDatabase: plain(database.New, deps),
	}
}

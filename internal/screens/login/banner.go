package login

import (
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const bannerArt = `╔╦╗╔═╗╔╦╗╔═╗╔═╗╔╗╔╔╗╔╔═╗╔═╗╔╦╗
║║║║╣  ║║║  ║ ║║║║║║║║╣ ║   ║
╩ ╩╚═╝═╩╝╚═╝╚═╝╝╚╝╝╚╝╚═╝╚═╝ ╩`

const bannerCompact = "✚ MedConnect"

// renderBanner returns the wordmark in the given accent, falling back to a
// single line below bannerWidth columns or when there is no vertical room.
func renderBanner(width, height int, accent theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(accent.Accent).Bold(true)
	if width < bannerWidth || height < bannerMinHeight {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

const (
	bannerWidth     = 34
	bannerMinHeight = 24
)

package simulation

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/router"
	"github.com/saketh8887/medconnect/internal/screen"
	"github.com/saketh8887/medconnect/internal/screens"
	"github.com/saketh8887/medconnect/internal/ui/components"
	"github.com/saketh8887/medconnect/internal/ui/layout"
	"github.com/saketh8887/medconnect/internal/ui/theme"
)

const (
	rotateStep = 45
	minZoom    = 1
	maxZoom    = 3
)

var organArt = map[string][]string{
	"heart": {
		`   .-"""-.  .-"""-.   `,
		`  /       \/       \  `,
		` |    LA   |   RA   | `,
		`  \   LV   |   RV  /  `,
		`   '.      |     .'   `,
		`     '-.   |  .-'     `,
		`        '-.|.-'       `,
	},
}

// SimulationScreen lists anatomy practice tasks and opens a task in a
// simple model viewer with rotation and zoom.
type SimulationScreen struct {
	deps  screens.Deps
	caps  router.Capabilities
	tasks []catalog.AnatomyTask
	perf  map[string]catalog.TaskPerformance
	menu  components.Menu

	open     bool
	task     catalog.AnatomyTask
	rotation int
	zoom     int
}

var _ screen.Screen = (*SimulationScreen)(nil)

// New creates the simulation view. Accents come from caps.Theme.
func New(deps screens.Deps, caps router.Capabilities) *SimulationScreen {
	s := &SimulationScreen{
		deps:  deps,
		caps:  caps,
		tasks: deps.Catalog.Tasks(),
		perf:  make(map[string]catalog.TaskPerformance),
		zoom:  minZoom,
	}
	for _, p := range deps.Catalog.Performance() {
		s.perf[p.TaskID] = p
	}

	items := make([]components.MenuItem, 0, len(s.tasks))
	for _, t := range s.tasks {
		items = append(items, components.MenuItem{
			Label:  t.Title,
			Detail: fmt.Sprintf("%s · %s", organLabel(t.Organ), t.Difficulty),
		})
	}
	s.menu = components.NewMenu(items, caps.Theme.Accent)
	return s
}

func (s *SimulationScreen) Init() tea.Cmd {
	return nil
}

func (s *SimulationScreen) Title() string {
	if s.open {
		return "Simulation · " + s.task.Title
	}
	return "Simulation"
}

func (s *SimulationScreen) KeyHints() []layout.KeyHint {
	if s.open {
		return []layout.KeyHint{
			{Key: "←→", Description: "Rotate"},
			{Key: "+/-", Description: "Zoom"},
			{Key: "Esc", Description: "Tasks"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *SimulationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.open {
		switch kmsg.String() {
		case "esc", "backspace":
			s.open = false
		case "left", "h":
			s.rotation = (s.rotation + 360 - rotateStep) % 360
		case "right", "l":
			s.rotation = (s.rotation + rotateStep) % 360
		case "+", "=":
			s.zoom = min(s.zoom+1, maxZoom)
		case "-":
			s.zoom = max(s.zoom-1, minZoom)
		case "r":
			s.rotation, s.zoom = 0, minZoom
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "backspace":
		if s.caps.BackToDashboard != nil {
			return s, s.caps.BackToDashboard()
		}
		return s, nil
	case "enter":
		if i := s.menu.Selected; i < len(s.tasks) {
			s.task = s.tasks[i]
			s.open = true
			s.rotation, s.zoom = 0, minZoom
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SimulationScreen) accent() color.Color {
	if s.caps.Theme.Accent != nil {
		return s.caps.Theme.Accent
	}
	return theme.Primary
}

func (s *SimulationScreen) View(width, height int) string {
	pal := s.deps.CurrentPalette()
	dim := lipgloss.NewStyle().Foreground(pal.TextDim)
	title := lipgloss.NewStyle().Foreground(s.accent()).Bold(true)

	var sections []string
	if !s.open {
		sections = append(sections,
			title.Render("3D Anatomy Lab"),
			dim.Render("Pick a task to open the model viewer"),
			"",
			s.menu.View(pal),
		)
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
	}

	sections = append(sections,
		title.Render(s.task.Title),
		dim.Render(s.task.Description),
		"",
		s.renderModel(pal),
		dim.Render(fmt.Sprintf("Rotation %d° · Zoom %dx", s.rotation, s.zoom)),
		"",
	)

	if p, ok := s.perf[s.task.ID]; ok {
		cards := []string{
			components.StatCard("Attempts", fmt.Sprint(p.Attempts), s.accent(), pal, 18),
			components.StatCard("Success rate", fmt.Sprintf("%.0f%%", p.SuccessRate*100), theme.Success, pal, 18),
			components.StatCard("Time spent", p.TimeSpent.Round(time.Second).String(), theme.Warning, pal, 18),
		}
		sections = append(sections, components.CardRow(cards, max(width-4, 18)))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

// renderModel draws the organ art, mirrored when facing away and scaled
// horizontally by zoom.
func (s *SimulationScreen) renderModel(pal theme.Palette) string {
	art, ok := organArt[s.task.Organ]
	if !ok {
		return theme.Hint.Render("No model available for " + s.task.Organ)
	}

	back := s.rotation > 90 && s.rotation < 270
	lines := make([]string, len(art))
	for i, line := range art {
		if back {
			line = mirror(line)
		}
		if s.zoom > 1 {
			var b strings.Builder
			for _, r := range line {
				b.WriteString(strings.Repeat(string(r), s.zoom))
			}
			line = b.String()
		}
		lines[i] = line
	}
	return lipgloss.NewStyle().
		Foreground(s.accent()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

var mirrorPairs = map[rune]rune{'/': '\\', '\\': '/', '(': ')', ')': '('}

func mirror(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	for i, c := range r {
		if m, ok := mirrorPairs[c]; ok {
			r[i] = m
		}
	}
	// Labels stay readable.
	for i := 0; i < len(r); {
		if !unicode.IsLetter(r[i]) {
			i++
			continue
		}
		j := i
		for j < len(r) && unicode.IsLetter(r[j]) {
			j++
		}
		slices.Reverse(r[i:j])
		i = j
	}
	return string(r)
}

func organLabel(organ string) string {
	if organ == "" {
		return "Unknown"
	}
	return strings.ToUpper(organ[:1]) + organ[1:]
}

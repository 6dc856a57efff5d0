package app

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/artspace/artspace/internal/config"
	"github.com/artspace/artspace/internal/ui/styles"
)

// Indicator is the row of position dots under the artwork. The highlight
// follows the current index on a spring instead of jumping.
type Indicator struct {
	spring    harmonica.Spring
	pos       float64
	vel       float64
	target    int
	animating bool
}

// NewIndicator creates an indicator resting on index start
func NewIndicator(start int) Indicator {
	return Indicator{
		spring: harmonica.NewSpring(
			harmonica.FPS(config.IndicatorFPS),
			config.IndicatorFrequency,
			config.IndicatorDamping,
		),
		pos:    float64(start),
		target: start,
	}
}

// SetTarget moves the highlight toward index i, starting the frame loop if idle
func (ind *Indicator) SetTarget(i int) tea.Cmd {
	ind.target = i
	if ind.animating {
		return nil
	}
	ind.animating = true
	return indicatorFrame()
}

// Update advances one frame and returns the next frame command until the
// spring settles on the target
func (ind *Indicator) Update(indicatorFrameMsg) tea.Cmd {
	target := float64(ind.target)
	ind.pos, ind.vel = ind.spring.Update(ind.pos, ind.vel, target)

	if math.Abs(ind.pos-target) < config.IndicatorEpsilon && math.Abs(ind.vel) < config.IndicatorEpsilon {
		ind.pos = target
		ind.vel = 0
		ind.animating = false
		return nil
	}
	return indicatorFrame()
}

// Animating reports whether the spring is still moving
func (ind Indicator) Animating() bool {
	return ind.animating
}

// Strength returns how strongly dot i is highlighted, in [0, 1]
func (ind Indicator) Strength(i int) float64 {
	return math.Max(0, 1-math.Abs(float64(i)-ind.pos))
}

// View renders n dots
func (ind Indicator) View(n int) string {
	dots := make([]string, n)
	for i := range dots {
		s := ind.Strength(i)
		dots[i] = styles.Dot(s).Render(styles.DotIcon(s))
	}
	return strings.Join(dots, " ")
}

func indicatorFrame() tea.Cmd {
	return tea.Tick(time.Second/config.IndicatorFPS, func(t time.Time) tea.Msg {
		return indicatorFrameMsg(t)
	})
}

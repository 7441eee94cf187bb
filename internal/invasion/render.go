package invasion

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

const titleText = "ALIEN INVASION!"

const helpText = "The Milky Way is under attack. Starfleet has given you command of the " +
	"Eagle 2, its fastest ship, armed with hypersonic missiles. Stop every alien fleet " +
	"before it reaches Earth, then face the alien general who leads them."

const completeText = "The alien general is destroyed and Earth is safe! Starfleet awards " +
	"you the medal of courage and the whole planet celebrates its hero."

var helpKeys = []string{
	"g / Play       start a mission",
	"arrows         steer the ship",
	"space          fire",
	"p              pause",
	"r              abort the mission",
	"s / Settings   choose the galaxy arm",
	"1 2 3          pick a difficulty in settings",
	"Esc            back to the control centre",
	"q / Exit       quit",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.renderStars(dst)

	switch g.phase {
	case PhaseMenu:
		g.renderShip(dst)
		g.renderTitle(dst)
		g.renderButtons(dst)
	case PhaseSettings:
		g.renderShip(dst)
		g.renderButtons(dst)
		dst.DrawTextCenteredColor(g.menu.main[0].Rect.Y-2,
			"Mission: "+difficultyLabel(g.settings.Difficulty), core.ColorGray)
	case PhaseHelp:
		g.renderHelp(dst)
	case PhaseActive, PhasePaused:
		g.renderPlayfield(dst)
		g.renderHUD(dst)
		if g.phase == PhasePaused {
			g.renderBanner(dst, "PAUSE")
		}
	case PhaseComplete:
		y := drawParagraph(dst, dst.Height()/3, "Congratulations!", core.ColorBrightYellow)
		y = drawParagraph(dst, y+1, completeText, core.ColorWhite)
		drawParagraph(dst, y+1, "Press Esc to return to Earth.", core.ColorGray)
	}
}

func (g *Game) renderStars(dst *core.Screen) {
	for _, s := range g.stars {
		dst.SetColor(s.X, cell(s.Y), s.Glyph, s.Color)
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	g.ship.sprite.Draw(dst, g.ship.Rect())
}

func (g *Game) renderTitle(dst *core.Screen) {
	y := core.Max(1, g.menu.main[0].Rect.Y-3)
	dst.DrawTextCenteredColor(y, titleText, core.ColorBrightGreen)
}

// renderButtons draws the buttons of the current menu section.
// The held difficulty button is highlighted.
func (g *Game) renderButtons(dst *core.Screen) {
	for _, b := range g.menu.Buttons(g.phase) {
		color := core.ColorBlue
		if b.ID >= ButtonEasy && b.ID <= ButtonHard && difficultyForButton(b.ID) == g.menu.Pressed() {
			color = core.ColorBrightGreen
		}
		dst.DrawBoxColor(b.Rect, color)
		labelX := b.Rect.X + (b.Rect.W-len(b.Label))/2
		dst.DrawTextColor(labelX, b.Rect.Y+1, b.Label, core.ColorBrightWhite)
	}
}

func (g *Game) renderHelp(dst *core.Screen) {
	y := drawParagraph(dst, 1, helpText, core.ColorWhite) + 1
	width := 0
	for _, line := range helpKeys {
		width = core.Max(width, len(line))
	}
	x := (dst.Width() - width) / 2
	for i, line := range helpKeys {
		dst.DrawTextColor(x, y+i, line, core.ColorCyan)
	}
	dst.DrawTextCenteredColor(dst.Height()-1, "Esc: back", core.ColorGray)
}

// renderPlayfield draws the ship, the enemies and every bullet.
func (g *Game) renderPlayfield(dst *core.Screen) {
	g.renderShip(dst)

	for _, a := range g.aliens() {
		a.Sprite().Draw(dst, a.Rect())
	}
	if g.general != nil {
		frame := g.general.lifeBarFrame()
		dst.FillRect(frame, lifeBarEmpty, core.ColorRed)
		dst.FillRect(g.general.LifeBar, lifeBarFull, core.ColorBrightRed)
	}

	for _, group := range [][]*Bullet{g.playerBullets, g.soldierBullets, g.generalBullets} {
		for _, b := range group {
			r := b.Rect()
			dst.SetColor(r.X, r.Y, b.glyph(), b.color())
		}
	}
}

// renderHUD draws remaining ships top-left, the best score top-centre and the score
// with the level top-right.
func (g *Game) renderHUD(dst *core.Screen) {
	for i := range g.stats.Lives {
		dst.DrawTextColor(1+i*(len(lifeIcon)+1), 0, lifeIcon, core.ColorBrightCyan)
	}

	best := "Best Score: " + humanize.Comma(int64(g.stats.HighScore))
	dst.DrawTextCenteredColor(0, best, core.ColorBrightWhite)

	score := "Score: " + humanize.Comma(int64(g.stats.Score))
	dst.DrawTextColor(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	level := fmt.Sprintf("Level: %d", g.stats.Level)
	if g.general != nil {
		level = "Level: FINAL"
	}
	dst.DrawTextColor(dst.Width()-len(level)-1, 1, level, core.ColorGray)
}

func (g *Game) renderBanner(dst *core.Screen, text string) {
	w := len(text) + 4
	r := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, 3)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBoxColor(r, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(r.Y+1, text, core.ColorBrightYellow)
}

// drawParagraph word-wraps text to at most 60 columns, centres each line from row y
// and returns the row after the last line.
func drawParagraph(dst *core.Screen, y int, text string, color core.Color) int {
	width := core.Min(60, dst.Width()-4)
	lines := strings.Split(ansi.Wordwrap(text, width, ""), "\n")
	for i, line := range lines {
		dst.DrawTextCenteredColor(y+i, strings.TrimSpace(line), color)
	}
	return y + len(lines)
}

// aliens returns every live enemy ship.
func (g *Game) aliens() []Alien {
	out := make([]Alien, 0, len(g.soldiers)+1)
	for _, s := range g.soldiers {
		out = append(out, s)
	}
	if g.general != nil {
		out = append(out, g.general)
	}
	return out
}

// difficultyLabel is the caption used for the current mode in status lines.
func difficultyLabel(d config.Difficulty) string {
	return fmt.Sprintf("%s (%s)", d.Label(), d)
}

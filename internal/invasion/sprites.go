package invasion

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Sprite is a glyph picture. Spaces are transparent.
type Sprite struct {
	Lines []string
	Color core.Color
}

// Width returns the width of the widest line in cells.
func (s Sprite) Width() int {
	w := 0
	for _, line := range s.Lines {
		w = core.Max(w, utf8.RuneCountInString(line))
	}
	return w
}

// Height returns the number of lines.
func (s Sprite) Height() int {
	return len(s.Lines)
}

// Draw paints the sprite with its top-left corner at r.
func (s Sprite) Draw(dst *core.Screen, r core.Rect) {
	dst.DrawSprite(r.X, r.Y, s.Lines, s.Color)
}

var shipSprite = Sprite{
	Lines: []string{" /^\\ ", "<###>"},
	Color: core.ColorBrightCyan,
}

// lifeIcon is the small ship drawn in the HUD for every ship left.
const lifeIcon = "/^\\"

// Soldier sprites, indexed by model - 1.
var soldierSprites = [...]Sprite{
	{Lines: []string{"/o\\"}, Color: core.ColorBrightGreen},
	{Lines: []string{"{@}"}, Color: core.ColorBrightMagenta},
	{Lines: []string{">X<"}, Color: core.ColorBrightRed},
}

// General sprites, indexed by model - 1.
var generalSprites = [...]Sprite{
	{Lines: []string{"/=[O]=\\", " \\/ \\/ "}, Color: core.ColorGreen},
	{Lines: []string{"<[@@@]>", " /|||\\ "}, Color: core.ColorMagenta},
	{Lines: []string{"}=#X#={", " vV^Vv "}, Color: core.ColorRed},
}

// Bullet glyphs by owner.
const (
	playerBulletGlyph  = '|'
	soldierBulletGlyph = '*'
	generalBulletGlyph = 'o'
)

// Life bar glyphs.
const (
	lifeBarFull  = '█'
	lifeBarEmpty = '░'
)

var starGlyphs = []rune{'.', '.', '·', '+', '*'}
var starColors = []core.Color{core.ColorGray, core.ColorWhite, core.ColorGray, core.ColorBrightWhite}

// SoldierSprite returns the sprite for an alien model (1..3). Out-of-range models are clamped.
func SoldierSprite(model int) Sprite {
	return soldierSprites[core.Clamp(model, 1, len(soldierSprites))-1]
}

// GeneralSprite returns the sprite for a general model (1..3). Out-of-range models are clamped.
func GeneralSprite(model int) Sprite {
	return generalSprites[core.Clamp(model, 1, len(generalSprites))-1]
}

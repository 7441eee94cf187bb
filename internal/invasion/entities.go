package invasion

import (
	"math"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// cell converts a float coordinate to the cell that contains it.
func cell(v float64) int {
	return int(math.Floor(v))
}

// Ship is the player's spaceship. It moves horizontally on a fixed row.
type Ship struct {
	X           float64
	Y           int
	MovingLeft  bool
	MovingRight bool

	settings *config.Settings
	sprite   Sprite
	screenW  int
}

func newShip(s *config.Settings, screenW, screenH int) *Ship {
	ship := &Ship{settings: s, sprite: shipSprite}
	ship.Place(screenW, screenH)
	return ship
}

// Rect returns the ship's bounding box.
func (s *Ship) Rect() core.Rect {
	return core.NewRect(cell(s.X), s.Y, s.sprite.Width(), s.sprite.Height())
}

// Place moves the ship to the bottom centre of a screen of the given size.
func (s *Ship) Place(screenW, screenH int) {
	s.screenW = screenW
	s.Y = screenH - s.sprite.Height() - 1
	s.Center()
}

// Center puts the ship back in the middle of its row.
func (s *Ship) Center() {
	s.X = float64((s.screenW - s.sprite.Width()) / 2)
}

// Update applies the movement flags. Right is applied first; both flags cancel out.
func (s *Ship) Update() {
	if s.MovingRight && s.Rect().Right() < s.screenW {
		s.X += s.settings.ShipSpeed
	}
	if s.MovingLeft && s.Rect().X > 0 {
		s.X -= s.settings.ShipSpeed
	}
	s.X = core.ClampF(s.X, 0, float64(s.screenW-s.sprite.Width()))
}

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerSoldier
	OwnerGeneral
)

// Bullet is a one-cell projectile moving vertically.
type Bullet struct {
	X     int
	Y     float64
	PrevY float64 // Y before the last Update
	Owner Owner
}

func newBullet(x int, y float64, owner Owner) *Bullet {
	return &Bullet{X: x, Y: y, PrevY: y, Owner: owner}
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X, cell(b.Y), 1, 1)
}

// Direction returns -1 for player bullets (up) and +1 for alien bullets (down).
func (b *Bullet) Direction() int {
	if b.Owner == OwnerPlayer {
		return -1
	}
	return 1
}

// Update moves the bullet by the owner's current speed.
func (b *Bullet) Update(s *config.Settings) {
	var speed float64
	switch b.Owner {
	case OwnerPlayer:
		speed = s.PlayerBulletSpeed
	case OwnerSoldier:
		speed = s.AlienBulletSpeed
	case OwnerGeneral:
		speed = s.BossBulletSpeed
	}
	b.PrevY = b.Y
	b.Y += float64(b.Direction()) * speed
}

// Crossed reports whether two bullets in the same column met during the last tick:
// they overlap now, or their vertical order flipped while moving.
func (b *Bullet) Crossed(other *Bullet) bool {
	if b.X != other.X {
		return false
	}
	if cell(b.Y) == cell(other.Y) {
		return true
	}
	return (b.PrevY-other.PrevY)*(b.Y-other.Y) < 0
}

// OffScreen reports whether the bullet left a screen of the given height.
func (b *Bullet) OffScreen(screenH int) bool {
	r := b.Rect()
	if b.Owner == OwnerPlayer {
		return r.Bottom() <= 0
	}
	return r.Y >= screenH
}

func (b *Bullet) glyph() rune {
	switch b.Owner {
	case OwnerSoldier:
		return soldierBulletGlyph
	case OwnerGeneral:
		return generalBulletGlyph
	default:
		return playerBulletGlyph
	}
}

func (b *Bullet) color() core.Color {
	switch b.Owner {
	case OwnerSoldier:
		return core.ColorBrightRed
	case OwnerGeneral:
		return core.ColorOrange
	default:
		return core.ColorBrightYellow
	}
}

// Star is a background particle drifting down the screen.
type Star struct {
	X     int
	Y     float64
	Glyph rune
	Color core.Color
}

// Alien is any enemy ship: a fleet soldier or the general.
type Alien interface {
	Rect() core.Rect
	Sprite() Sprite
	// Update moves the alien one tick in the shared fleet direction.
	Update()
	// AtSide reports whether the alien reached the screen side it is heading to.
	AtSide(screenW int) bool
}

// Soldier is a member of the alien fleet.
type Soldier struct {
	X float64
	Y int

	settings *config.Settings
	sprite   Sprite
}

func newSoldier(s *config.Settings, x, y int) *Soldier {
	return &Soldier{
		X:        float64(x),
		Y:        y,
		settings: s,
		sprite:   SoldierSprite(s.AlienModel),
	}
}

func (a *Soldier) Rect() core.Rect {
	return core.NewRect(cell(a.X), a.Y, a.sprite.Width(), a.sprite.Height())
}

func (a *Soldier) Sprite() Sprite { return a.sprite }

func (a *Soldier) Update() {
	a.X += float64(a.settings.FleetDirection) * a.settings.AlienSpeed
}

func (a *Soldier) AtSide(screenW int) bool {
	return a.Rect().AtSide(screenW, a.settings.FleetDirection)
}

// General is the boss of the final level. It carries a life bar.
type General struct {
	X       float64
	Y       int
	Life    int
	LifeBar core.Rect

	settings *config.Settings
	sprite   Sprite
}

func newGeneral(s *config.Settings, screenW, screenH int) *General {
	g := &General{settings: s, sprite: GeneralSprite(s.BossModel)}
	g.Reset(screenW, screenH)
	return g
}

// Reset recentres the general a third of the way down the screen and restores its life.
func (g *General) Reset(screenW, screenH int) {
	g.X = float64((screenW - g.sprite.Width()) / 2)
	g.Y = screenH/3 - g.sprite.Height()/2
	g.Life = g.settings.BossLifePoints
	g.updateLifeBar()
}

func (g *General) Rect() core.Rect {
	return core.NewRect(cell(g.X), g.Y, g.sprite.Width(), g.sprite.Height())
}

func (g *General) Sprite() Sprite { return g.sprite }

func (g *General) Update() {
	g.X += float64(g.settings.FleetDirection) * g.settings.BossSpeed
	g.updateLifeBar()
}

func (g *General) AtSide(screenW int) bool {
	return g.Rect().AtSide(screenW, g.settings.FleetDirection)
}

// Hit applies one player hit and reports whether the general is destroyed.
func (g *General) Hit() bool {
	g.Life -= g.settings.BossDamagePerHit
	g.updateLifeBar()
	return g.Life <= 0
}

// updateLifeBar sizes the bar to the remaining life and centres it above the ship.
func (g *General) updateLifeBar() {
	maxW := g.settings.BossLifeBarWidth
	maxLife := g.settings.BossLifePoints
	w := 0
	if g.Life > 0 && maxLife > 0 {
		// Round up so a nearly dead general still shows one cell
		w = (g.Life*maxW + maxLife - 1) / maxLife
	}
	r := g.Rect()
	g.LifeBar = core.NewRect(0, r.Y-1, w, 1).CenteredAt(r.CenterX())
}

// lifeBarFrame returns the full-width bar outline centred above the ship.
func (g *General) lifeBarFrame() core.Rect {
	r := g.Rect()
	return core.NewRect(0, r.Y-1, g.settings.BossLifeBarWidth, 1).CenteredAt(r.CenterX())
}

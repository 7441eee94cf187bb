package invasion

import (
	"github.com/vovakirdan/tui-invasion/internal/config"
)

// BuildFleet lays out a new soldier formation for a screen of the given size.
// The layout depends only on the settings and the screen, so equal inputs give equal fleets.
//
// Columns fill two thirds of the width at a pitch of AlienSpacing alien widths, plus
// ExtraAliensPerRow; rows fill a third of the height at a pitch of FleetRowSpacing alien
// heights, starting FleetTopRows alien heights from the top.
func BuildFleet(s *config.Settings, screenW, screenH int) []*Soldier {
	sprite := SoldierSprite(s.AlienModel)
	w, h := sprite.Width(), sprite.Height()
	pitchX := s.AlienSpacing * w
	pitchY := s.FleetRowSpacing * h

	cols := (2*screenW/3)/pitchX + s.ExtraAliensPerRow
	rows := (screenH / 3) / pitchY

	// Keep the rightmost column clear of the right edge
	for cols > 1 && w+pitchX*(cols-1)+w >= screenW {
		cols--
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	fleet := make([]*Soldier, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			x := w + pitchX*col
			y := s.FleetTopRows*h + pitchY*row
			fleet = append(fleet, newSoldier(s, x, y))
		}
	}
	return fleet
}

// createFleet replaces the current fleet with a fresh formation.
func (g *Game) createFleet() {
	g.soldiers = BuildFleet(g.settings, g.runtime.ScreenW, g.runtime.ScreenH)
}

// checkFleetEdges drops the whole fleet and reverses its direction when any soldier
// reaches the side it is moving towards. At most one flip happens per tick.
func (g *Game) checkFleetEdges() {
	for _, a := range g.soldiers {
		if a.AtSide(g.runtime.ScreenW) {
			g.changeFleetDirection()
			return
		}
	}
}

func (g *Game) changeFleetDirection() {
	for _, a := range g.soldiers {
		a.Y += g.settings.FleetDropSpeed
	}
	g.settings.ReverseFleet()
}

// updateSoldiers moves the fleet, handles edge flips and reports whether a soldier
// reached the ship or the bottom of the screen.
func (g *Game) updateSoldiers() (shipHit bool) {
	for _, a := range g.soldiers {
		a.Update()
	}
	g.checkFleetEdges()

	shipRect := g.ship.Rect()
	for _, a := range g.soldiers {
		r := a.Rect()
		if r.Intersects(shipRect) || r.Bottom() >= g.runtime.ScreenH {
			return true
		}
	}
	return false
}

// updateGeneral moves the general, bouncing between the screen sides without dropping.
func (g *Game) updateGeneral() {
	if g.general.AtSide(g.runtime.ScreenW) {
		g.settings.ReverseFleet()
	}
	g.general.Update()
}

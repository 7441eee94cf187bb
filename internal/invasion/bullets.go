package invasion

// firePlayerBullet launches a bullet from the ship's top centre.
// Firing with PlayerBulletsAllowed bullets already in flight does nothing.
func (g *Game) firePlayerBullet() bool {
	if len(g.playerBullets) >= g.settings.PlayerBulletsAllowed {
		return false
	}
	x, y := g.ship.Rect().MidTop()
	g.playerBullets = append(g.playerBullets, newBullet(x, float64(y), OwnerPlayer))
	if g.cue != nil {
		g.cue.Fire()
	}
	return true
}

// fireSoldierBullet launches a bullet from a random soldier while below the cap.
func (g *Game) fireSoldierBullet() {
	if len(g.soldiers) == 0 || len(g.soldierBullets) >= g.settings.AlienBulletsAllowed {
		return
	}
	shooter := g.soldiers[g.rng.Intn(len(g.soldiers))]
	g.soldierBullets = append(g.soldierBullets, alienBullet(shooter, OwnerSoldier))
}

// fireGeneralBullet launches a bullet from the general with BossFireChance per tick.
func (g *Game) fireGeneralBullet() {
	if g.general == nil {
		return
	}
	// Roll every tick so the random stream does not depend on the cap
	roll := g.rng.Float64()
	if roll >= g.settings.BossFireChance || len(g.generalBullets) >= g.settings.BossBulletsAllowed {
		return
	}
	g.generalBullets = append(g.generalBullets, alienBullet(g.general, OwnerGeneral))
}

// alienBullet creates a bullet at the shooter's bottom centre.
func alienBullet(shooter Alien, owner Owner) *Bullet {
	x, bottom := shooter.Rect().MidBottom()
	return newBullet(x, float64(bottom-1), owner)
}

// updateBullets moves every bullet and drops the ones that left the screen.
func (g *Game) updateBullets() {
	g.playerBullets = g.advance(g.playerBullets)
	g.soldierBullets = g.advance(g.soldierBullets)
	g.generalBullets = g.advance(g.generalBullets)
}

func (g *Game) advance(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Update(g.settings)
		if !b.OffScreen(g.runtime.ScreenH) {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

// clearBullets empties every bullet group.
func (g *Game) clearBullets() {
	g.playerBullets = g.playerBullets[:0]
	g.soldierBullets = g.soldierBullets[:0]
	g.generalBullets = g.generalBullets[:0]
}

package invasion

import "github.com/vovakirdan/tui-invasion/internal/core"

type boxed interface {
	Rect() core.Rect
}

// collideGroups removes every member of as that overlaps a member of bs, together with all
// the bs members it overlaps. Removed bs members cannot be hit again by later as members.
// It returns the survivors of both groups and the number of bs members removed.
func collideGroups[A, B boxed](as []A, bs []B) ([]A, []B, int) {
	if len(as) == 0 || len(bs) == 0 {
		return as, bs, 0
	}

	removed := 0
	keptA := as[:0]
	for _, a := range as {
		ar := a.Rect()
		hit := false
		keptB := bs[:0]
		for _, b := range bs {
			if ar.Intersects(b.Rect()) {
				hit = true
				removed++
				continue
			}
			keptB = append(keptB, b)
		}
		var zero B
		for i := len(keptB); i < len(bs); i++ {
			bs[i] = zero
		}
		bs = keptB
		if !hit {
			keptA = append(keptA, a)
		}
	}
	var zero A
	for i := len(keptA); i < len(as); i++ {
		as[i] = zero
	}
	return keptA, bs, removed
}

// collideBullets removes every player bullet that crossed an alien bullet this tick,
// together with the alien bullets it crossed.
func collideBullets(players, aliens []*Bullet) ([]*Bullet, []*Bullet) {
	if len(players) == 0 || len(aliens) == 0 {
		return players, aliens
	}

	keptP := players[:0]
	for _, p := range players {
		hit := false
		keptA := aliens[:0]
		for _, a := range aliens {
			if p.Crossed(a) {
				hit = true
				continue
			}
			keptA = append(keptA, a)
		}
		clear(aliens[len(keptA):])
		aliens = keptA
		if !hit {
			keptP = append(keptP, p)
		}
	}
	clear(players[len(keptP):])
	return keptP, aliens
}

// collidesAny reports whether r overlaps any member of group.
func collidesAny[T boxed](r core.Rect, group []T) bool {
	for _, m := range group {
		if r.Intersects(m.Rect()) {
			return true
		}
	}
	return false
}

// checkCollisions resolves all overlaps after movement. Order:
//  1. player bullets against alien bullets (both removed)
//  2. alien bullets against the ship (ship hit)
//  3. player bullets against soldiers (scored, may clear the wave)
//  4. player bullets against the general (damage, may complete the game)
func (g *Game) checkCollisions(res *core.StepResult) {
	g.playerBullets, g.soldierBullets = collideBullets(g.playerBullets, g.soldierBullets)
	g.playerBullets, g.generalBullets = collideBullets(g.playerBullets, g.generalBullets)

	shipRect := g.ship.Rect()
	if collidesAny(shipRect, g.soldierBullets) || collidesAny(shipRect, g.generalBullets) {
		g.shipHit(res)
		return
	}

	if len(g.soldiers) > 0 {
		var killed int
		g.playerBullets, g.soldiers, killed = collideGroups(g.playerBullets, g.soldiers)
		if killed > 0 {
			g.stats.AddScore(g.settings.PointsForAlien * killed)
			if len(g.soldiers) == 0 {
				g.waveCleared()
				return
			}
		}
	}

	if g.general != nil {
		g.hitGeneral(res)
	}
}

// hitGeneral applies every player bullet touching the general.
func (g *Game) hitGeneral(res *core.StepResult) {
	r := g.general.Rect()
	kept := g.playerBullets[:0]
	destroyed := false
	for _, b := range g.playerBullets {
		if !destroyed && r.Intersects(b.Rect()) {
			destroyed = g.general.Hit()
			continue
		}
		kept = append(kept, b)
	}
	clear(g.playerBullets[len(kept):])
	g.playerBullets = kept

	if destroyed {
		g.complete(res)
	}
}

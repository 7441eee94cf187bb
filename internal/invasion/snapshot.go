package invasion

import "math"

// Snapshot contains the simulation state for replay checks and determinism testing.
// Uses primitive types only for stable serialization. Float positions are stored in
// thousandths of a cell.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Freeze    int
	Score     int
	HighScore int
	Level     int
	Lives     int

	Difficulty     int
	FleetDirection int
	PointsForAlien int

	ShipX int

	// Soldiers are 2 ints each: X, Y
	SoldierData []int

	// General state: present, X, Y, Life
	GeneralData [4]int

	// Bullets are 3 ints each: Owner, X, Y
	BulletData []int

	StarCount int
	RNGState  uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	soldiers := make([]int, 0, len(g.soldiers)*2)
	for _, a := range g.soldiers {
		soldiers = append(soldiers, milli(a.X), a.Y)
	}

	var general [4]int
	if g.general != nil {
		general = [4]int{1, milli(g.general.X), g.general.Y, g.general.Life}
	}

	n := len(g.playerBullets) + len(g.soldierBullets) + len(g.generalBullets)
	bullets := make([]int, 0, n*3)
	for _, group := range [][]*Bullet{g.playerBullets, g.soldierBullets, g.generalBullets} {
		for _, b := range group {
			bullets = append(bullets, int(b.Owner), b.X, milli(b.Y))
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Phase:     int(g.phase),
		Freeze:    g.freeze,
		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		Lives:     g.stats.Lives,

		Difficulty:     int(g.settings.Difficulty),
		FleetDirection: g.settings.FleetDirection,
		PointsForAlien: g.settings.PointsForAlien,

		ShipX:       milli(g.ship.X),
		SoldierData: soldiers,
		GeneralData: general,
		BulletData:  bullets,
		StarCount:   len(g.stars),
		RNGState:    g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Freeze, snap.Score, snap.HighScore, snap.Level, snap.Lives,
		snap.Difficulty, snap.FleetDirection, snap.PointsForAlien, snap.ShipX, snap.StarCount,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.SoldierData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.GeneralData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}

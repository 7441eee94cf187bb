// Package invasion implements the alien invasion shoot-em-up: a player ship defending
// against descending alien fleets and, on the final level, the alien general.
// The package is pure game logic; platforms feed it input frames and present its screen.
package invasion

import (
	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Minimum playable screen size.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Cue plays short sound effects. Implementations must return immediately.
type Cue interface {
	Fire()
}

// Game implements the invasion game loop.
type Game struct {
	cfg     config.Config
	cue     Cue
	runtime core.RuntimeConfig

	settings *config.Settings
	stats    Stats
	menu     *Menu
	rng      *rng

	phase    Phase
	tick     uint64
	freeze   int // Ticks left of the ship-hit pause
	quit     bool
	tooSmall bool

	ship           *Ship
	soldiers       []*Soldier
	general        *General
	playerBullets  []*Bullet
	soldierBullets []*Bullet
	generalBullets []*Bullet
	stars          []*Star
}

// New creates a game for the given configuration. cue may be nil.
func New(cfg config.Config, cue Cue) *Game {
	return &Game{cfg: cfg, cue: cue}
}

// Reset initializes the game on the title menu. The high score survives a reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.settings = config.NewSettings(g.cfg, runtime.TickRate)
	g.stats.Reset(g.settings.ShipsLimit)
	g.rng = newRNG(runtime.Seed)
	g.menu = NewMenu(runtime.ScreenW, runtime.ScreenH)
	if g.settings.Difficulty != config.Medium {
		g.menu.Select(g.settings.Difficulty, g.settings)
	}

	g.phase = PhaseMenu
	g.tick = 0
	g.freeze = 0
	g.quit = false

	g.ship = newShip(g.settings, runtime.ScreenW, runtime.ScreenH)
	g.soldiers = nil
	g.general = nil
	g.playerBullets = nil
	g.soldierBullets = nil
	g.generalBullets = nil
	g.createStars()
}

// Resize adapts the game to a new screen size. Entities keep their positions;
// the ship, the menu and the star field follow the new bounds.
func (g *Game) Resize(w, h int) {
	if w == g.runtime.ScreenW && h == g.runtime.ScreenH {
		return
	}
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH

	x := g.ship.X
	g.ship.Place(w, h)
	g.ship.X = core.ClampF(x, 0, float64(w-g.ship.Rect().W))
	g.menu.Layout(w, h)
	g.createStars()
}

// SetDifficulty applies a mode as if it had been picked in the settings section.
func (g *Game) SetDifficulty(mode config.Difficulty) {
	g.menu.Select(mode, g.settings)
	if !g.phase.InGame() {
		g.stats.Lives = g.settings.ShipsLimit
	}
}

// SeedHighScore raises the high score to a best score recorded elsewhere.
func (g *Game) SeedHighScore(best int) {
	g.stats.SeedHighScore(best)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Stats returns a copy of the scoreboard.
func (g *Game) Stats() Stats { return g.stats }

// Settings returns the live settings record.
func (g *Game) Settings() *config.Settings { return g.settings }

// Menu returns the menu layout.
func (g *Game) Menu() *Menu { return g.menu }

// CursorVisible reports whether the platform should show the mouse cursor.
// It is hidden only while a playthrough is underway.
func (g *Game) CursorVisible() bool {
	return !g.phase.InGame()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.stats.Score,
		HighScore:  g.stats.HighScore,
		Level:      g.stats.Level,
		Lives:      g.stats.Lives,
		Difficulty: g.settings.Difficulty.String(),
		Paused:     g.phase == PhasePaused,
		Quit:       g.quit,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if g.tooSmall {
		if in.Has(core.ActionQuit) {
			g.quitGame(&res)
		}
		res.State = g.State()
		return res
	}

	g.tick++
	g.updateStars()
	g.handleInput(in, &res)

	// The hit pause also runs out in the menu after the last ship is lost
	if g.freeze > 0 && g.phase != PhasePaused {
		g.freeze--
		res.State = g.State()
		return res
	}

	if g.phase == PhaseActive && !g.quit {
		g.update(&res)
	}

	res.State = g.State()
	return res
}

// handleInput applies key actions and mouse clicks for the current phase.
func (g *Game) handleInput(in core.InputFrame, res *core.StepResult) {
	if in.Empty() {
		return
	}

	// Movement flags follow the keys in every phase
	if in.Has(core.ActionRight) {
		g.ship.MovingRight = true
	}
	if in.Has(core.ActionRightRelease) {
		g.ship.MovingRight = false
	}
	if in.Has(core.ActionLeft) {
		g.ship.MovingLeft = true
	}
	if in.Has(core.ActionLeftRelease) {
		g.ship.MovingLeft = false
	}

	if in.Has(core.ActionQuit) {
		g.quitGame(res)
		return
	}

	// Menu keys and clicks wait for the penalty pause of a lost playthrough
	if g.freeze > 0 && g.phase.InMenu() {
		return
	}

	switch g.phase {
	case PhaseMenu:
		switch {
		case in.Has(core.ActionStart):
			g.startGame()
		case in.Has(core.ActionSettings):
			g.phase = PhaseSettings
		case in.Has(core.ActionHelp):
			g.phase = PhaseHelp
		}
	case PhaseSettings:
		switch {
		case in.Has(core.ActionBack):
			g.phase = PhaseMenu
		case in.Has(core.ActionEasy):
			g.toggleDifficulty(config.Easy)
		case in.Has(core.ActionMedium):
			g.toggleDifficulty(config.Medium)
		case in.Has(core.ActionHard):
			g.toggleDifficulty(config.Hard)
		}
	case PhaseHelp, PhaseComplete:
		if in.Has(core.ActionBack) {
			g.phase = PhaseMenu
		}
	case PhaseActive:
		switch {
		case in.Has(core.ActionPause):
			g.phase = PhasePaused
		case in.Has(core.ActionReset):
			g.endPlaythrough(res, core.OutcomeAbandoned, PhaseMenu)
		case in.Has(core.ActionFire) && g.freeze == 0:
			g.firePlayerBullet()
		}
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhaseActive
		}
	}

	if g.phase.InMenu() {
		for _, c := range in.Clicks {
			if g.click(c, res) {
				break
			}
		}
	}
}

// click handles a mouse press in a menu section. It returns true when the press
// changed the section, so later clicks of the same frame are ignored.
func (g *Game) click(c core.Click, res *core.StepResult) bool {
	id, ok := g.menu.ButtonAt(g.phase, c.X, c.Y)
	if !ok {
		return false
	}
	switch id {
	case ButtonPlay:
		g.startGame()
	case ButtonSettings:
		g.phase = PhaseSettings
	case ButtonHelp:
		g.phase = PhaseHelp
	case ButtonExit:
		g.quitGame(res)
	case ButtonEasy, ButtonMedium, ButtonHard:
		g.toggleDifficulty(difficultyForButton(id))
		return false
	case ButtonBack:
		g.phase = PhaseMenu
	}
	return true
}

func (g *Game) toggleDifficulty(mode config.Difficulty) {
	g.menu.Toggle(mode, g.settings)
	g.stats.Lives = g.settings.ShipsLimit
}

// startGame begins a new playthrough from the first wave.
func (g *Game) startGame() {
	g.stats.Reset(g.settings.ShipsLimit)
	g.settings.ResetGameplaySpeedup()
	g.clearBullets()
	g.general = nil
	g.ship.Center()
	g.freeze = 0
	g.spawnWave()
	g.phase = PhaseActive
}

// spawnWave creates the next enemy wave: the general once the final level is
// reached, a soldier fleet before that.
func (g *Game) spawnWave() {
	if g.stats.Level >= g.settings.FinalLevel {
		g.soldiers = g.soldiers[:0]
		g.general = newGeneral(g.settings, g.runtime.ScreenW, g.runtime.ScreenH)
		return
	}
	g.createFleet()
}

// update runs one gameplay tick.
func (g *Game) update(res *core.StepResult) {
	g.ship.Update()
	g.updateBullets()

	if g.general != nil {
		g.updateGeneral()
		g.fireGeneralBullet()
	} else {
		if g.updateSoldiers() {
			g.shipHit(res)
			return
		}
		g.fireSoldierBullet()
	}

	g.checkCollisions(res)
}

// waveCleared advances to the next level once the fleet is destroyed.
func (g *Game) waveCleared() {
	g.clearBullets()
	g.stats.Level++
	g.settings.IncreaseGameplaySpeed()
	g.spawnWave()
}

// shipHit removes every alien and bullet and recentres the ship. With ships left the
// wave restarts after the freeze; otherwise the playthrough is lost.
func (g *Game) shipHit(res *core.StepResult) {
	g.soldiers = g.soldiers[:0]
	g.clearBullets()
	g.ship.Center()

	g.stats.Lives--
	if g.stats.Lives > 0 {
		if g.general != nil {
			g.general.Reset(g.runtime.ScreenW, g.runtime.ScreenH)
		} else {
			g.createFleet()
		}
	} else {
		g.stats.Lives = 0
		g.endPlaythrough(res, core.OutcomeLost, PhaseMenu)
	}
	g.freeze = g.settings.HitFreezeTicks
}

// complete ends the playthrough after the general is destroyed.
func (g *Game) complete(res *core.StepResult) {
	g.endPlaythrough(res, core.OutcomeVictory, PhaseComplete)
}

// endPlaythrough clears the battlefield, restores base speeds and reports the outcome.
func (g *Game) endPlaythrough(res *core.StepResult, outcome core.Outcome, next Phase) {
	g.soldiers = g.soldiers[:0]
	g.general = nil
	g.clearBullets()
	g.ship.Center()
	g.settings.ResetGameplaySpeedup()
	g.phase = next

	res.Ended = true
	res.Outcome = outcome
}

// quitGame asks the platform to exit, ending a running playthrough first.
func (g *Game) quitGame(res *core.StepResult) {
	if g.phase.InGame() {
		g.endPlaythrough(res, core.OutcomeAbandoned, PhaseMenu)
	}
	g.quit = true
}

// createStars fills the screen with StarRows bands of StarsPerRow stars.
func (g *Game) createStars() {
	g.stars = g.stars[:0]
	rows := core.Max(g.settings.StarRows, 1)
	rowSpace := core.Max(g.runtime.ScreenH/rows, 1)
	for row := range rows {
		for range g.settings.StarsPerRow {
			g.stars = append(g.stars, g.newStar(float64(rowSpace*row)))
		}
	}
}

// newStar creates a star at a random column, within one band below top.
func (g *Game) newStar(top float64) *Star {
	rowSpace := core.Max(g.runtime.ScreenH/core.Max(g.settings.StarRows, 1), 1)
	return &Star{
		X:     g.rng.Intn(core.Max(g.runtime.ScreenW, 1)),
		Y:     top + float64(g.rng.Intn(rowSpace+1)),
		Glyph: starGlyphs[g.rng.Intn(len(starGlyphs))],
		Color: starColors[g.rng.Intn(len(starColors))],
	}
}

// updateStars drifts the stars down, recycling the ones that leave the screen.
// One star per tick enters above the top edge until the field is full again.
func (g *Game) updateStars() {
	kept := g.stars[:0]
	for _, s := range g.stars {
		s.Y += g.settings.StarSpeed
		if cell(s.Y) <= g.runtime.ScreenH {
			kept = append(kept, s)
		}
	}
	clear(g.stars[len(kept):])
	g.stars = kept

	if len(g.stars) < g.settings.StarsPerRow*g.settings.StarRows {
		rowSpace := core.Max(g.runtime.ScreenH/core.Max(g.settings.StarRows, 1), 1)
		g.stars = append(g.stars, g.newStar(-float64(rowSpace)))
	}
}

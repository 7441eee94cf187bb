// Package window runs the game in a desktop window with Ebiten. The playfield is the
// same character grid the terminal shows, drawn with Ebiten's debug font.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// Cell size in pixels. The debug font is 6x16; the extra columns space the glyphs.
const (
	cellW = 8
	cellH = 16
)

var background = color.RGBA{0x05, 0x05, 0x12, 0xff}

// pressKeys maps keys to the actions they trigger when pressed.
var pressKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyG:          core.ActionStart,
	ebiten.KeyS:          core.ActionSettings,
	ebiten.KeyH:          core.ActionHelp,
	ebiten.KeyEscape:     core.ActionBack,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionReset,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.Key1:          core.ActionEasy,
	ebiten.Key2:          core.ActionMedium,
	ebiten.Key3:          core.ActionHard,
}

// releaseKeys maps keys to the actions they trigger when released.
var releaseKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeftRelease,
	ebiten.KeyArrowRight: core.ActionRightRelease,
}

// Options configures the window.
type Options struct {
	Cols     int
	Rows     int
	TickRate int
	Seed     int64
	Title    string
}

// Window implements ebiten.Game around an invasion game.
type Window struct {
	game   *invasion.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	frame  core.InputFrame
	glyphs map[rune]*ebiten.Image
	keys   []ebiten.Key
	cursor bool
	cfg    core.RuntimeConfig
}

// New creates a window for the game and resets it to the menu.
func New(game *invasion.Game, store *storage.Store, opts Options, logger *log.Logger) *Window {
	cfg := core.RuntimeConfig{
		ScreenW:  opts.Cols,
		ScreenH:  opts.Rows,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}
	w := &Window{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		frame:  core.NewInputFrame(),
		glyphs: make(map[rune]*ebiten.Image),
		cursor: true,
		cfg:    cfg,
	}

	game.Reset(cfg)
	if store != nil {
		if best, err := store.HighScore(""); err == nil {
			game.SeedHighScore(best)
		} else if logger != nil {
			logger.Warn("could not read high score", "error", err)
		}
	}
	return w
}

// Update gathers input and advances the game by one tick.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if a, ok := pressKeys[k]; ok {
			w.frame.Set(a)
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		if a, ok := releaseKeys[k]; ok {
			w.frame.Set(a)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.frame.AddClick(x/cellW, y/cellH)
	}

	res := w.game.Step(w.frame)
	w.frame.Clear()
	if res.Ended {
		w.saveResult(res)
	}
	if res.State.Quit {
		return ebiten.Termination
	}

	if visible := w.game.CursorVisible(); visible != w.cursor {
		w.cursor = visible
		if visible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
	return nil
}

// saveResult records a finished playthrough with points.
func (w *Window) saveResult(res core.StepResult) {
	if w.store == nil || res.State.Score == 0 {
		return
	}
	_, err := w.store.SaveScore(storage.ScoreEntry{
		Score:      res.State.Score,
		Level:      res.State.Level,
		Difficulty: res.State.Difficulty,
		Outcome:    string(res.Outcome),
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("could not record score", "error", err)
	}
}

// Draw renders the game grid.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Render(w.screen)

	for y := range w.screen.Height() {
		for x := range w.screen.Width() {
			cell := w.screen.GetCell(x, y)
			w.drawCell(screen, x, y, cell)
		}
	}
}

func (w *Window) drawCell(dst *ebiten.Image, x, y int, cell core.Cell) {
	if cell.Rune == ' ' {
		return
	}
	r, g, b := cell.Color.RGB()
	clr := color.RGBA{r, g, b, 0xff}
	px, py := float32(x*cellW), float32(y*cellH)

	switch cell.Rune {
	case '█':
		vector.DrawFilledRect(dst, px, py+2, cellW, cellH-4, clr, false)
		return
	case '░':
		vector.StrokeRect(dst, px+0.5, py+2.5, cellW-1, cellH-5, 1, clr, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px+1), float64(py))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(w.glyph(cell.Rune), op)
}

// glyph returns a white image of the rune, rendering it on first use.
func (w *Window) glyph(r rune) *ebiten.Image {
	if img, ok := w.glyphs[r]; ok {
		return img
	}
	img := ebiten.NewImage(cellW, cellH)
	ebitenutil.DebugPrint(img, string(r))
	w.glyphs[r] = img
	return img
}

// Layout follows the window size, resizing the grid when whole cells change.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := core.Max(outsideWidth/cellW, 1)
	rows := core.Max(outsideHeight/cellH, 1)
	if cols != w.cfg.ScreenW || rows != w.cfg.ScreenH {
		w.cfg.ScreenW, w.cfg.ScreenH = cols, rows
		w.screen.Resize(cols, rows)
		w.game.Resize(cols, rows)
	}
	return cols * cellW, rows * cellH
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *invasion.Game, store *storage.Store, opts Options, logger *log.Logger) error {
	w := New(game, store, opts, logger)

	ebiten.SetWindowSize(opts.Cols*cellW, opts.Rows*cellH)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

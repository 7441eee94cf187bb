package invasion

import (
	"testing"

	"github.com/vovakirdan/tui-invasion/internal/config"
)

func testSettings() *config.Settings {
	return config.NewSettings(config.DefaultConfig(), 60)
}

func TestBuildFleetLayout(t *testing.T) {
	s := testSettings()
	fleet := BuildFleet(s, 80, 24)

	// 80 columns: (53 / 6) + 1 extra per row on medium; 24 rows: 8 / 2
	if len(fleet) != 9*4 {
		t.Fatalf("len(BuildFleet()) = %d, expected %d", len(fleet), 9*4)
	}

	tests := []struct {
		index int
		x, y  int
	}{
		{0, 3, 3},
		{1, 9, 3},
		{8, 51, 3},
		{9, 3, 5},
		{35, 51, 9},
	}
	for _, tc := range tests {
		r := fleet[tc.index].Rect()
		if r.X != tc.x || r.Y != tc.y {
			t.Errorf("fleet[%d] at (%d, %d), expected (%d, %d)", tc.index, r.X, r.Y, tc.x, tc.y)
		}
	}
}

func TestBuildFleetDeterministic(t *testing.T) {
	s := testSettings()
	a := BuildFleet(s, 100, 30)
	b := BuildFleet(s, 100, 30)

	if len(a) != len(b) {
		t.Fatalf("fleet sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Rect() != b[i].Rect() {
			t.Errorf("fleet[%d] = %+v, expected %+v", i, a[i].Rect(), b[i].Rect())
		}
	}
}

func TestBuildFleetStaysOnScreen(t *testing.T) {
	tests := []struct {
		name  string
		mode  config.Difficulty
		extra int
		w, h  int
	}{
		{"easy minimum screen", config.Easy, 0, 40, 16},
		{"hard minimum screen", config.Hard, 0, 40, 16},
		{"many extra aliens", config.Medium, 10, 40, 16},
		{"wide screen", config.Hard, 0, 200, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testSettings()
			s.SwitchDifficulty(tc.mode)
			s.ExtraAliensPerRow += tc.extra

			fleet := BuildFleet(s, tc.w, tc.h)
			if len(fleet) == 0 {
				t.Fatal("BuildFleet() returned no soldiers")
			}
			for i, a := range fleet {
				r := a.Rect()
				if r.X < 0 || r.Right() >= tc.w || r.Bottom() > tc.h {
					t.Errorf("fleet[%d] = %+v, outside %dx%d", i, r, tc.w, tc.h)
				}
			}
		})
	}
}

func TestSoldierModels(t *testing.T) {
	s := testSettings()
	for _, mode := range []config.Difficulty{config.Easy, config.Medium, config.Hard} {
		s.SwitchDifficulty(mode)
		fleet := BuildFleet(s, 80, 24)
		expected := SoldierSprite(s.AlienModel)
		if got := fleet[0].Sprite(); got.Lines[0] != expected.Lines[0] {
			t.Errorf("%v fleet sprite = %q, expected %q", mode, got.Lines[0], expected.Lines[0])
		}
	}
}

func TestBulletUpdate(t *testing.T) {
	s := testSettings()
	s.PlayerBulletSpeed = 2
	s.AlienBulletSpeed = 3
	s.BossBulletSpeed = 0.5

	tests := []struct {
		owner    Owner
		expected float64
	}{
		{OwnerPlayer, 8},
		{OwnerSoldier, 13},
		{OwnerGeneral, 10.5},
	}
	for _, tc := range tests {
		b := &Bullet{X: 5, Y: 10, Owner: tc.owner}
		b.Update(s)
		if b.Y != tc.expected {
			t.Errorf("owner %d: Y = %v, expected %v", tc.owner, b.Y, tc.expected)
		}
		if b.X != 5 {
			t.Errorf("owner %d: X changed to %d", tc.owner, b.X)
		}
	}
}

func TestGeneralLifeBar(t *testing.T) {
	s := testSettings()
	g := newGeneral(s, 80, 24)

	if g.LifeBar.W != s.BossLifeBarWidth {
		t.Errorf("full life bar width = %d, expected %d", g.LifeBar.W, s.BossLifeBarWidth)
	}
	if g.LifeBar.CenterX() != g.Rect().CenterX() || g.LifeBar.Y != g.Rect().Y-1 {
		t.Errorf("life bar %+v not centred above general %+v", g.LifeBar, g.Rect())
	}

	g.Life = s.BossLifePoints / 2
	g.updateLifeBar()
	if g.LifeBar.W != s.BossLifeBarWidth/2 {
		t.Errorf("half life bar width = %d, expected %d", g.LifeBar.W, s.BossLifeBarWidth/2)
	}

	g.Life = 1
	g.updateLifeBar()
	if g.LifeBar.W != 1 {
		t.Errorf("nearly dead life bar width = %d, expected 1", g.LifeBar.W)
	}

	g.Life = s.BossDamagePerHit
	if !g.Hit() {
		t.Error("Hit() = false, expected the general to be destroyed")
	}
	if g.LifeBar.W != 0 {
		t.Errorf("dead life bar width = %d, expected 0", g.LifeBar.W)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := newRNG(7), newRNG(7)
	for i := range 100 {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}

	r := newRNG(0)
	for range 1000 {
		if v := r.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d, out of range", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of range", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

package invasion

// Stats tracks the scoreboard of the current playthrough.
type Stats struct {
	Score     int
	HighScore int // Never decreases during the process lifetime
	Level     int
	Lives     int
}

// Reset starts a new playthrough with the given number of ships. The high score is kept.
func (s *Stats) Reset(lives int) {
	s.Score = 0
	s.Level = 1
	s.Lives = lives
}

// AddScore adds points and raises the high score when it is beaten.
func (s *Stats) AddScore(points int) {
	s.Score += points
	s.CheckHighScore()
}

// CheckHighScore updates the high score if the current score exceeds it.
func (s *Stats) CheckHighScore() {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// SeedHighScore raises the high score to a previously recorded best.
func (s *Stats) SeedHighScore(best int) {
	if best > s.HighScore {
		s.HighScore = best
	}
}

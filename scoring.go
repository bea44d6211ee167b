package bombtris

import "time"

const (
	BaseDropInterval = time.Second
	MaxLevel         = 5
	LevelScoreStep   = 2000
	BombBonus        = 500
)

func LevelForScore(score int) int {
	return min(MaxLevel, 1+score/LevelScoreStep)
}

func DropInterval(base time.Duration, level int) time.Duration {
	return base / time.Duration(level)
}

// Scoring tracks score, level and fall speed for one session. Level and interval only
// ever move in the faster direction.
type Scoring struct {
	base     time.Duration
	score    int
	level    int
	interval time.Duration
}

func NewScoring(base time.Duration) *Scoring {
	return &Scoring{
		base:     base,
		level:    1,
		interval: base,
	}
}

func (s *Scoring) Score() int              { return s.score }
func (s *Scoring) Level() int              { return s.level }
func (s *Scoring) Interval() time.Duration { return s.interval }

// Add credits points and recomputes the level. It reports whether the level went up.
func (s *Scoring) Add(points int) bool {
	if points <= 0 {
		return false
	}
	s.score += points

	level := LevelForScore(s.score)
	if level <= s.level {
		return false
	}
	s.level = level
	s.interval = DropInterval(s.base, level)
	return true
}

package scoring

import (
	"lcu-scout/internal/constants"
	"lcu-scout/internal/domain"
)

// Score turns one match's stats into a relative performance number.
// The result is not clamped and can go negative.
func Score(s domain.ParticipantStats) int {
	score := constants.BaseScore
	if s.FirstBloodKill {
		score += 10
	}
	if s.FirstBloodAssist {
		score += 5
	}
	if s.CausedEarlySurrender {
		score -= 10
	}
	if s.Win {
		score += 5
	} else {
		score -= 5
	}
	score += s.DoubleKills * 2
	score += s.TripleKills * 5
	score += s.QuadraKills * 10
	score += s.PentaKills * 15
	score += s.Assists
	score += s.Kills * 2
	score -= s.Deaths
	return score
}

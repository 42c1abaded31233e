package scoring

import (
	"errors"
	"fmt"
	"lcu-scout/internal/constants"
	"lcu-scout/internal/domain"
)

var (
	ErrNoMatches      = errors.New("match history has no matches")
	ErrNoIdentities   = errors.New("match has no participant identities")
	ErrNoParticipants = errors.New("match has no participants")
)

// AverageScore averages the score of the queried player over every match
// accepted by q. The match history endpoint lists the queried account first,
// so the first participant of each match is taken as that player.
// With no accepted matches it returns constants.DefaultAverageScore.
func AverageScore(h *domain.MatchHistory, q domain.QueryType) (float64, error) {
	if h == nil {
		return constants.DefaultAverageScore, nil
	}

	sum, count := 0, 0
	for _, m := range h.Games.Games {
		if !q.Matches(m) {
			continue
		}
		if len(m.Participants) == 0 {
			return 0, fmt.Errorf("game %d: %w", m.ID, ErrNoParticipants)
		}
		sum += Score(m.Participants[0].Stats)
		count++
	}

	if count == 0 {
		return constants.DefaultAverageScore, nil
	}
	return float64(sum) / float64(count), nil
}

// PlayerName returns the display name of the first identity of the first
// match in h.
func PlayerName(h *domain.MatchHistory) (string, error) {
	if h == nil || len(h.Games.Games) == 0 {
		return "", ErrNoMatches
	}
	first := h.Games.Games[0]
	if len(first.Identities) == 0 {
		return "", fmt.Errorf("game %d: %w", first.ID, ErrNoIdentities)
	}
	return first.Identities[0].Player.Name, nil
}

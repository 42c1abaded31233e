package service

import (
	"context"

	"lcu-scout/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) FindActiveConversationID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMatchSource) ListParticipantIDs(ctx context.Context, conversationID string) ([]string, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMatchSource) FetchMatchHistory(ctx context.Context, participantID string) (*domain.MatchHistory, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchHistory), args.Error(1)
}

// historyOf builds a one-player history where every game is a ranked solo
// game with the given stats.
func historyOf(name string, stats ...domain.ParticipantStats) *domain.MatchHistory {
	games := make([]domain.Match, 0, len(stats))
	for i, s := range stats {
		games = append(games, domain.Match{
			ID:      int64(i + 1),
			Mode:    "CLASSIC",
			Type:    "MATCHED_GAME",
			QueueID: 420,
			Identities: []domain.ParticipantIdentity{
				{ParticipantID: 1, Player: domain.Player{Name: name}},
			},
			Participants: []domain.Participant{{ParticipantID: 1, Stats: s}},
		})
	}
	return &domain.MatchHistory{Games: domain.MatchList{Count: len(games), Games: games}}
}

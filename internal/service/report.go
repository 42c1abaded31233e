package service

import (
	"context"
	"fmt"

	"lcu-scout/internal/api"
	"lcu-scout/internal/domain"
	"lcu-scout/internal/middleware"
	"lcu-scout/internal/scoring"

	"github.com/rs/zerolog"
)

// MatchSource is the part of the LCU the reporter reads from.
type MatchSource interface {
	FindActiveConversationID(ctx context.Context) (string, error)
	ListParticipantIDs(ctx context.Context, conversationID string) ([]string, error)
	FetchMatchHistory(ctx context.Context, participantID string) (*domain.MatchHistory, error)
}

type ReportService struct {
	lcu    MatchSource
	logger zerolog.Logger
}

func NewReportService(lcu *api.LCUClient, logger zerolog.Logger) *ReportService {
	return newReportService(lcu, logger)
}

func newReportService(lcu MatchSource, logger zerolog.Logger) *ReportService {
	return &ReportService{lcu: lcu, logger: logger}
}

// Run builds one report for the players in the current champion select.
// Only an unreachable LCU is returned as an error; everything else shrinks
// the report and is logged.
func (s *ReportService) Run(ctx context.Context, q domain.QueryType) (*domain.Report, error) {
	logger := s.loggerFrom(ctx)
	report := &domain.Report{CycleID: middleware.GetCycleID(ctx), Query: q}

	conversationID, err := s.lcu.FindActiveConversationID(ctx)
	if err != nil {
		if api.IsFatal(err) {
			return nil, fmt.Errorf("failed to get conversation id: %w", err)
		}
		logger.Warn().Err(err).Msg("failed to get conversation id")
		return report, nil
	}

	ids, err := s.lcu.ListParticipantIDs(ctx, conversationID)
	if err != nil {
		if api.IsFatal(err) {
			return nil, fmt.Errorf("failed to query participant ids: %w", err)
		}
		logger.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to query participant ids")
		return report, nil
	}
	if len(ids) == 0 {
		logger.Warn().Str("conversation_id", conversationID).Msg("no participants in conversation")
		return report, nil
	}

	for _, id := range ids {
		player, err := s.scorePlayer(ctx, id, q)
		if err != nil {
			if api.IsFatal(err) {
				return nil, err
			}
			logger.Warn().Err(err).Str("participant_id", id).Msg("skipping player")
			report.Skipped = append(report.Skipped, id)
			continue
		}

		logger.Info().
			Str("participant_id", id).
			Str("summoner", player.Name).
			Float64("average_score", player.Score).
			Msg("player scored")
		report.Players = append(report.Players, player)
	}

	report.Ranked = Rank(report.Players)
	return report, nil
}

func (s *ReportService) scorePlayer(ctx context.Context, id string, q domain.QueryType) (domain.PlayerScore, error) {
	history, err := s.lcu.FetchMatchHistory(ctx, id)
	if err != nil {
		return domain.PlayerScore{}, fmt.Errorf("failed to fetch match history: %w", err)
	}

	name, err := scoring.PlayerName(history)
	if err != nil {
		return domain.PlayerScore{}, fmt.Errorf("failed to read player name: %w", err)
	}

	avg, err := scoring.AverageScore(history, q)
	if err != nil {
		return domain.PlayerScore{}, fmt.Errorf("failed to score %s: %w", name, err)
	}

	return domain.PlayerScore{Name: name, Score: avg}, nil
}

func (s *ReportService) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

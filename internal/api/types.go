package api

import "lcu-scout/internal/domain"

// Wire formats of the LCU endpoints. Nothing outside this package sees the
// camelCase field names; everything is mapped onto domain types here.

type conversationResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Pid  string `json:"pid"`
}

type messageResponse struct {
	Body           string `json:"body"`
	FromID         string `json:"fromId"`
	FromPid        string `json:"fromPid"`
	FromSummonerID int64  `json:"fromSummonerId"`
	ID             string `json:"id"`
	IsHistorical   bool   `json:"isHistorical"`
	Timestamp      string `json:"timestamp"`
	Type           string `json:"type"`
}

type matchHistoryResponse struct {
	AccountID  int64          `json:"accountId"`
	PlatformID string         `json:"platformId"`
	Games      gameListResult `json:"games"`
}

type gameListResult struct {
	GameBeginDate  string         `json:"gameBeginDate"`
	GameCount      int            `json:"gameCount"`
	GameEndDate    string         `json:"gameEndDate"`
	GameIndexBegin int            `json:"gameIndexBegin"`
	GameIndexEnd   int            `json:"gameIndexEnd"`
	Games          []gameResponse `json:"games"`
}

type gameResponse struct {
	GameID                int64                 `json:"gameId"`
	GameMode              string                `json:"gameMode"`
	GameType              string                `json:"gameType"`
	GameVersion           string                `json:"gameVersion"`
	MapID                 int                   `json:"mapId"`
	QueueID               int                   `json:"queueId"`
	ParticipantIdentities []participantIdentity `json:"participantIdentities"`
	Participants          []participant         `json:"participants"`
}

type participantIdentity struct {
	ParticipantID int `json:"participantId"`
	Player        struct {
		AccountID    int64  `json:"accountId"`
		SummonerID   int64  `json:"summonerId"`
		SummonerName string `json:"summonerName"`
	} `json:"player"`
}

type participant struct {
	ChampionID                int              `json:"championId"`
	HighestAchievedSeasonTier string           `json:"highestAchievedSeasonTier"`
	ParticipantID             int              `json:"participantId"`
	Stats                     participantStats `json:"stats"`
}

type participantStats struct {
	Assists                     int  `json:"assists"`
	CausedEarlySurrender        bool `json:"causedEarlySurrender"`
	Deaths                      int  `json:"deaths"`
	Kills                       int  `json:"kills"`
	DoubleKills                 int  `json:"doubleKills"`
	TripleKills                 int  `json:"tripleKills"`
	QuadraKills                 int  `json:"quadraKills"`
	PentaKills                  int  `json:"pentaKills"`
	KillingSprees               int  `json:"killingSprees"`
	TotalDamageDealtToChampions int  `json:"totalDamageDealtToChampions"`
	FirstBloodAssist            bool `json:"firstBloodAssist"`
	FirstBloodKill              bool `json:"firstBloodKill"`
	Win                         bool `json:"win"`
}

func (c conversationResponse) toDomain() domain.Conversation {
	return domain.Conversation{ID: c.ID, Type: c.Type}
}

func (m messageResponse) toDomain() domain.ConversationMessage {
	return domain.ConversationMessage{
		ID:             m.ID,
		FromID:         m.FromID,
		FromSummonerID: m.FromSummonerID,
		Body:           m.Body,
		Type:           m.Type,
	}
}

func (r *matchHistoryResponse) toDomain() *domain.MatchHistory {
	games := make([]domain.Match, 0, len(r.Games.Games))
	for _, g := range r.Games.Games {
		games = append(games, g.toDomain())
	}

	return &domain.MatchHistory{
		AccountID:  r.AccountID,
		PlatformID: r.PlatformID,
		Games: domain.MatchList{
			BeginDate:  r.Games.GameBeginDate,
			EndDate:    r.Games.GameEndDate,
			Count:      r.Games.GameCount,
			IndexBegin: r.Games.GameIndexBegin,
			IndexEnd:   r.Games.GameIndexEnd,
			Games:      games,
		},
	}
}

func (g gameResponse) toDomain() domain.Match {
	identities := make([]domain.ParticipantIdentity, 0, len(g.ParticipantIdentities))
	for _, pi := range g.ParticipantIdentities {
		identities = append(identities, domain.ParticipantIdentity{
			ParticipantID: pi.ParticipantID,
			Player: domain.Player{
				AccountID:  pi.Player.AccountID,
				SummonerID: pi.Player.SummonerID,
				Name:       pi.Player.SummonerName,
			},
		})
	}

	participants := make([]domain.Participant, 0, len(g.Participants))
	for _, p := range g.Participants {
		participants = append(participants, domain.Participant{
			ParticipantID: p.ParticipantID,
			ChampionID:    p.ChampionID,
			HighestTier:   p.HighestAchievedSeasonTier,
			Stats: domain.ParticipantStats{
				Assists:                p.Stats.Assists,
				Deaths:                 p.Stats.Deaths,
				Kills:                  p.Stats.Kills,
				DoubleKills:            p.Stats.DoubleKills,
				TripleKills:            p.Stats.TripleKills,
				QuadraKills:            p.Stats.QuadraKills,
				PentaKills:             p.Stats.PentaKills,
				KillingSprees:          p.Stats.KillingSprees,
				TotalDamageToChampions: p.Stats.TotalDamageDealtToChampions,
				CausedEarlySurrender:   p.Stats.CausedEarlySurrender,
				FirstBloodKill:         p.Stats.FirstBloodKill,
				FirstBloodAssist:       p.Stats.FirstBloodAssist,
				Win:                    p.Stats.Win,
			},
		})
	}

	return domain.Match{
		ID:           g.GameID,
		Mode:         g.GameMode,
		Type:         g.GameType,
		Version:      g.GameVersion,
		MapID:        g.MapID,
		QueueID:      g.QueueID,
		Identities:   identities,
		Participants: participants,
	}
}

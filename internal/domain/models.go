package domain

type MatchHistory struct {
	AccountID  int64
	PlatformID string
	Games      MatchList
}

type MatchList struct {
	BeginDate  string
	EndDate    string
	Count      int
	IndexBegin int
	IndexEnd   int
	Games      []Match
}

type Match struct {
	ID           int64
	Mode         string // "CLASSIC", "ARAM", ...
	Type         string // "MATCHED_GAME", ...
	Version      string
	MapID        int
	QueueID      int
	Identities   []ParticipantIdentity
	Participants []Participant
}

type ParticipantIdentity struct {
	ParticipantID int
	Player        Player
}

type Player struct {
	AccountID  int64
	SummonerID int64
	Name       string
}

type Participant struct {
	ParticipantID int
	ChampionID    int
	HighestTier   string
	Stats         ParticipantStats
}

type ParticipantStats struct {
	Assists                int
	Deaths                 int
	Kills                  int
	DoubleKills            int
	TripleKills            int
	QuadraKills            int
	PentaKills             int
	KillingSprees          int
	TotalDamageToChampions int
	CausedEarlySurrender   bool
	FirstBloodKill         bool
	FirstBloodAssist       bool
	Win                    bool
}

type Conversation struct {
	ID   string
	Type string
}

type ConversationMessage struct {
	ID             string
	FromID         string
	FromSummonerID int64
	Body           string
	Type           string
}

type PlayerScore struct {
	Name  string
	Score float64
}

type RankedPlayer struct {
	Label string
	PlayerScore
}

// Report is the outcome of one report cycle. Skipped holds the participant
// ids whose data could not be scored.
type Report struct {
	CycleID string
	Query   QueryType
	Players []PlayerScore
	Ranked  []RankedPlayer
	Skipped []string
}

package domain

import "fmt"

type QueryType int

const (
	QueryRank QueryType = iota
	QueryPolarChaos
)

type queryFilter struct {
	queueID  int
	gameMode string
	gameType string
}

var queryFilters = map[QueryType]queryFilter{
	QueryRank:       {queueID: 420, gameMode: "CLASSIC", gameType: "MATCHED_GAME"},
	QueryPolarChaos: {queueID: 450, gameMode: "ARAM", gameType: "MATCHED_GAME"},
}

func (q QueryType) QueueID() int     { return queryFilters[q].queueID }
func (q QueryType) GameMode() string { return queryFilters[q].gameMode }
func (q QueryType) GameType() string { return queryFilters[q].gameType }

// Matches reports whether m was played in the queue q describes.
func (q QueryType) Matches(m Match) bool {
	f, ok := queryFilters[q]
	if !ok {
		return false
	}
	return m.Mode == f.gameMode && m.Type == f.gameType && m.QueueID == f.queueID
}

func (q QueryType) String() string {
	switch q {
	case QueryRank:
		return "rank"
	case QueryPolarChaos:
		return "polar_chaos"
	default:
		return fmt.Sprintf("QueryType(%d)", int(q))
	}
}

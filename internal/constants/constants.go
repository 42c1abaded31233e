package constants

import "time"

const (
	LCUHost       = "127.0.0.1"
	LCUAuthUser   = "riot"
	ChampSelect   = "championSelect"
	PortFlag      = "--app-port="
	AuthTokenFlag = "--remoting-auth-token="
)

const (
	ConversationsPath = "/lol-chat/v1/conversations"
	MessagesPath      = "/lol-chat/v1/conversations/%s/messages"
	MatchHistoryPath  = "/lol-match-history/v3/matchlist/account/%s"
)

const (
	DiscoveryTimeout = 10 * time.Second
	ShutdownTimeout  = 5 * time.Second
)

const (
	BaseScore           = 100
	DefaultAverageScore = 95.0
)

// TierLabels is ordered from the lowest tier to the highest.
var TierLabels = [...]string{"牛马", "大司马", "下等马", "中等马", "上等马"}

const CommandHint = "press 'r' to query rank info\n press 'j' to query polar chaos info\n press 'q' to quit."

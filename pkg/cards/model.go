package cards

// Player mirrors the tournament bot's user record, the part a card needs.
type Player struct {
	DiscordID   string `json:"discord_id"`
	DiscordName string `json:"discord_name"`
	PlayerTag   string `json:"player_tag"`
	PlayerName  string `json:"player_name"`
	Icon        int64  `json:"icon"`
}

// ProfilePlayer extends Player with the stats shown on a profile card.
type ProfilePlayer struct {
	Player
	Trophies     int    `json:"trophies"`
	BrawlerCount int    `json:"brawler_count"`
	TournamentID string `json:"tournament_id"`
}

// Battle is one entry of a battle-log sheet. Result holds the winner's
// discord id, or nil for a draw.
type Battle struct {
	Player1    Player  `json:"player1"`
	Player2    Player  `json:"player2"`
	BattleTime string  `json:"battle_time"`
	Duration   int     `json:"duration"`
	Mode       string  `json:"mode"`
	Map        string  `json:"map"`
	Type       string  `json:"type"`
	Result     *string `json:"result"`
}

type MatchRequest struct {
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`
}

type ResultRequest struct {
	Winner Player `json:"winner"`
	Loser  Player `json:"loser"`
}

type ProfileRequest struct {
	Player ProfilePlayer `json:"player"`
}

type BattleLogRequest struct {
	BattleLogs []Battle `json:"battle_logs"`
}

var modeNames = map[string]string{
	"gemGrab":       "Gem Grab",
	"brawlBall":     "Brawl Ball",
	"heist":         "Heist",
	"bounty":        "Bounty",
	"hotZone":       "Hot Zone",
	"knockout":      "Knockout",
	"siege":         "Siege",
	"soloShowdown":  "Solo Showdown",
	"duoShowdown":   "Duo Showdown",
	"wipeout":       "Wipeout",
	"duels":         "Duels",
	"basketBrawl":   "Basket Brawl",
	"volleyBrawl":   "Volley Brawl",
	"holdTheTrophy": "Hold The Trophy",
}

// ModeName maps an API mode identifier to its display name. Unknown modes
// come back unchanged.
func ModeName(mode string) string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return mode
}

package pong

// Player is a person on the ladder. Produced only by decoding a leaderboard
// response; fields are exactly what the remote service returns, with no
// validation or derived computation.
type Player struct {
	ID     int     `json:"id"`     // Numeric player identifier
	Rating float64 `json:"rating"` // Current ladder rating
	Rank   int     `json:"rank"`   // Current ladder rank (1 is best)
	Name   string  `json:"name"`   // Display name
}

// Match is a completed game record: who won, who lost, and both sides'
// rating and rank before and after. Read-only, decoded from the
// match-history response.
type Match struct {
	ID         int64 `json:"id"`          // Numeric match identifier
	PlayedTime int64 `json:"played_time"` // Unix timestamp of the match

	WinnerID           int     `json:"winner_id"`
	WinnerName         string  `json:"winner_name"`
	WinnerRatingBefore float64 `json:"winner_rating_before"`
	WinnerRatingAfter  float64 `json:"winner_rating_after"`
	WinnerRankBefore   int     `json:"winner_rank_before"`
	WinnerRankAfter    int     `json:"winner_rank_after"`

	LoserID           int     `json:"loser_id"`
	LoserName         string  `json:"loser_name"`
	LoserRatingBefore float64 `json:"loser_rating_before"`
	LoserRatingAfter  float64 `json:"loser_rating_after"`
	LoserRankBefore   int     `json:"loser_rank_before"`
	LoserRankAfter    int     `json:"loser_rank_after"`
}

// GetPlayersResponse wraps the leaderboard payload. Players are in the
// order the service returned them, which the service documents as rank
// order; this library does not reorder or verify it.
type GetPlayersResponse struct {
	Players []Player `json:"players"`
}

// GetMatchesResponse wraps the match-history payload. Matches are in the
// order the service returned them.
type GetMatchesResponse struct {
	Matches []Match `json:"matches"`
}

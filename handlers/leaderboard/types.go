package leaderboard

// Error messages
const (
	ErrFailedFetchRanking = "Failed to fetch leaderboard"
	ErrFailedExport       = "Failed to export leaderboard"
)

// The ranking page and the default API read both show the top 20, matching
// the public leaderboard size of the event.
const defaultLimit = 20

// maxLimit caps API reads so a caller cannot dump the whole table.
const maxLimit = 100

// Entry is one row of the ranking response
type Entry struct {
	Rank   int   `json:"rank"`
	UserID int64 `json:"user_id"`
	Points int   `json:"points"`
}

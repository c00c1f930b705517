package shared

const (
	UserID   = "user_id"
	Identity = "identity"

	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"

	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

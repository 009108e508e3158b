package domain

const LeaderboardSize = 10

var (
	MessageFailedGetLeaderboard = "failed to compute leaderboard"
	MessageFailedExportBoard    = "failed to export leaderboard"
)

type (
	FoodLeaderboardEntry struct {
		Donor         UserSummary `json:"donor"`
		TotalQuantity float64     `json:"totalQuantity"`
	}

	FundLeaderboardEntry struct {
		Donor       UserSummary `json:"donor"`
		TotalAmount float64     `json:"totalAmount"`
	}

	LeaderboardResponse struct {
		Success         bool                   `json:"success"`
		FoodLeaderboard []FoodLeaderboardEntry `json:"foodLeaderboard"`
		FundLeaderboard []FundLeaderboardEntry `json:"fundLeaderboard"`
	}
)

package leaderboard

import (
	"sort"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/pkg/user"

	"github.com/google/uuid"
)

type tally struct {
	donor domain.UserSummary
	total float64
}

func summaryFor(donorID uuid.UUID, donor *entities.User) domain.UserSummary {
	if s := user.ToSummary(donor); s != nil {
		s.Role = ""
		return *s
	}
	return domain.UserSummary{ID: donorID.String()}
}

// top sorts by total descending, then donor name and id, and keeps the
// first domain.LeaderboardSize entries.
func top(totals map[uuid.UUID]*tally) []*tally {
	ranked := make([]*tally, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.total != b.total {
			return a.total > b.total
		}
		if a.donor.Name != b.donor.Name {
			return a.donor.Name < b.donor.Name
		}
		return a.donor.ID < b.donor.ID
	})
	if len(ranked) > domain.LeaderboardSize {
		ranked = ranked[:domain.LeaderboardSize]
	}
	return ranked
}

func RankFoodDonors(foods []*entities.FoodListing) []domain.FoodLeaderboardEntry {
	totals := map[uuid.UUID]*tally{}
	for _, f := range foods {
		t, ok := totals[f.DonorID]
		if !ok {
			t = &tally{donor: summaryFor(f.DonorID, f.Donor)}
			totals[f.DonorID] = t
		}
		t.total += ParseQuantity(f.Quantity)
	}

	entries := make([]domain.FoodLeaderboardEntry, 0, len(totals))
	for _, t := range top(totals) {
		entries = append(entries, domain.FoodLeaderboardEntry{Donor: t.donor, TotalQuantity: t.total})
	}
	return entries
}

// RankFundDonors expects completed donations only.
func RankFundDonors(donations []*entities.FundDonation) []domain.FundLeaderboardEntry {
	totals := map[uuid.UUID]*tally{}
	for _, d := range donations {
		t, ok := totals[d.DonorID]
		if !ok {
			t = &tally{donor: summaryFor(d.DonorID, d.Donor)}
			totals[d.DonorID] = t
		}
		t.total += d.Amount
	}

	entries := make([]domain.FundLeaderboardEntry, 0, len(totals))
	for _, t := range top(totals) {
		entries = append(entries, domain.FundLeaderboardEntry{Donor: t.donor, TotalAmount: t.total})
	}
	return entries
}

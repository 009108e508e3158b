package leaderboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

type stubFoods struct {
	foods []*entities.FoodListing
	err   error
}

func (s stubFoods) GetAllFoodListings(context.Context) ([]*entities.FoodListing, error) {
	return s.foods, s.err
}

type stubFunds struct {
	donations []*entities.FundDonation
	err       error
}

func (s stubFunds) GetCompletedFundDonations(context.Context) ([]*entities.FundDonation, error) {
	return s.donations, s.err
}

func donor(name string) *entities.User {
	return &entities.User{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: domain.RoleDonor}
}

func listing(d *entities.User, quantity string) *entities.FoodListing {
	return &entities.FoodListing{ID: uuid.New(), DonorID: d.ID, Donor: d, Quantity: quantity}
}

func donation(d *entities.User, amount float64) *entities.FundDonation {
	return &entities.FundDonation{ID: uuid.New(), DonorID: d.ID, Donor: d, Amount: amount, Status: domain.FundStatusCompleted}
}

func TestRankFoodDonors(t *testing.T) {
	asha, ravi, meera := donor("asha"), donor("ravi"), donor("meera")

	entries := RankFoodDonors([]*entities.FoodListing{
		listing(asha, "10 kg"),
		listing(ravi, "5 portions"),
		listing(asha, "2.5kg"),
		listing(meera, "abc"),
		listing(ravi, "7"),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "asha", entries[0].Donor.Name)
	assert.Equal(t, 12.5, entries[0].TotalQuantity)
	assert.Equal(t, "ravi", entries[1].Donor.Name)
	assert.Equal(t, 12.0, entries[1].TotalQuantity)
	assert.Equal(t, "meera", entries[2].Donor.Name)
	assert.Equal(t, 0.0, entries[2].TotalQuantity)
	assert.Empty(t, entries[0].Donor.Role)
}

func TestRankFoodDonors_TiesAndLimit(t *testing.T) {
	var foods []*entities.FoodListing
	for i := 0; i < 15; i++ {
		foods = append(foods, listing(donor(fmt.Sprintf("donor-%02d", 14-i)), "1 kg"))
	}

	entries := RankFoodDonors(foods)
	require.Len(t, entries, domain.LeaderboardSize)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("donor-%02d", i), e.Donor.Name)
	}
}

func TestRankFundDonors(t *testing.T) {
	asha, ravi := donor("asha"), donor("ravi")

	entries := RankFundDonors([]*entities.FundDonation{
		donation(asha, 100),
		donation(ravi, 250),
		donation(asha, 50),
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "ravi", entries[0].Donor.Name)
	assert.Equal(t, 250.0, entries[0].TotalAmount)
	assert.Equal(t, 150.0, entries[1].TotalAmount)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, RankFoodDonors(nil))
	assert.Empty(t, RankFundDonors(nil))
}

func TestLeaderboardService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	asha := donor("asha")

	t.Run("Success", func(t *testing.T) {
		svc := NewLeaderboardService(
			stubFoods{foods: []*entities.FoodListing{listing(asha, "3 kg")}},
			stubFunds{donations: []*entities.FundDonation{donation(asha, 20)}},
		)
		board, err := svc.GetLeaderboard(ctx)
		require.NoError(t, err)
		assert.True(t, board.Success)
		assert.Len(t, board.FoodLeaderboard, 1)
		assert.Len(t, board.FundLeaderboard, 1)
	})

	t.Run("StoreError", func(t *testing.T) {
		svc := NewLeaderboardService(stubFoods{err: errors.New("db down")}, stubFunds{})
		_, err := svc.GetLeaderboard(ctx)
		assert.Error(t, err)
	})
}

func TestLeaderboardService_ExportXLSX(t *testing.T) {
	asha, ravi := donor("asha"), donor("ravi")
	svc := NewLeaderboardService(
		stubFoods{foods: []*entities.FoodListing{listing(asha, "3 kg"), listing(ravi, "1 kg")}},
		stubFunds{donations: []*entities.FundDonation{donation(ravi, 20)}},
	)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportXLSX(context.Background(), &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	food := file.Sheet["Food Donors"]
	require.NotNil(t, food)
	assert.Len(t, food.Rows, 3)
	assert.Equal(t, "Donor", food.Rows[0].Cells[1].Value)
	assert.Equal(t, "asha", food.Rows[1].Cells[1].Value)

	fund := file.Sheet["Fund Donors"]
	require.NotNil(t, fund)
	assert.Len(t, fund.Rows, 2)
}

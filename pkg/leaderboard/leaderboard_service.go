package leaderboard

import (
	"context"
	"fmt"
	"io"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"

	"github.com/tealeg/xlsx"
)

type (
	FoodSource interface {
		GetAllFoodListings(ctx context.Context) ([]*entities.FoodListing, error)
	}

	FundSource interface {
		GetCompletedFundDonations(ctx context.Context) ([]*entities.FundDonation, error)
	}

	LeaderboardService interface {
		GetLeaderboard(ctx context.Context) (domain.LeaderboardResponse, error)
		ExportXLSX(ctx context.Context, w io.Writer) error
	}

	leaderboardService struct {
		foods FoodSource
		funds FundSource
	}
)

func NewLeaderboardService(foods FoodSource, funds FundSource) LeaderboardService {
	return &leaderboardService{foods: foods, funds: funds}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context) (domain.LeaderboardResponse, error) {
	foods, err := s.foods.GetAllFoodListings(ctx)
	if err != nil {
		return domain.LeaderboardResponse{}, fmt.Errorf("load food listings: %w", err)
	}
	donations, err := s.funds.GetCompletedFundDonations(ctx)
	if err != nil {
		return domain.LeaderboardResponse{}, fmt.Errorf("load fund donations: %w", err)
	}

	return domain.LeaderboardResponse{
		Success:         true,
		FoodLeaderboard: RankFoodDonors(foods),
		FundLeaderboard: RankFundDonors(donations),
	}, nil
}

func (s *leaderboardService) ExportXLSX(ctx context.Context, w io.Writer) error {
	board, err := s.GetLeaderboard(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()

	foodSheet, err := file.AddSheet("Food Donors")
	if err != nil {
		return err
	}
	addHeader(foodSheet, "Rank", "Donor", "Email", "Total Quantity")
	for i, entry := range board.FoodLeaderboard {
		row := foodSheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(entry.Donor.Name)
		row.AddCell().SetString(entry.Donor.Email)
		row.AddCell().SetFloat(entry.TotalQuantity)
	}

	fundSheet, err := file.AddSheet("Fund Donors")
	if err != nil {
		return err
	}
	addHeader(fundSheet, "Rank", "Donor", "Email", "Total Amount")
	for i, entry := range board.FundLeaderboard {
		row := fundSheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(entry.Donor.Name)
		row.AddCell().SetString(entry.Donor.Email)
		row.AddCell().SetFloat(entry.TotalAmount)
	}

	return file.Write(w)
}

func addHeader(sheet *xlsx.Sheet, headers ...string) {
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font

	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetString(h)
		cell.SetStyle(style)
	}
}

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livehost-agency/agency-backend-go/internal/domain/dashboard"
)

func TestRankRows_OrderAndTiebreaks(t *testing.T) {
	rows := []dashboard.SellerPerformanceRow{
		{SellerID: "a", FullName: "Ana", TotalSolds: 10, TotalHours: 20, WorkingDays: 5},
		{SellerID: "b", FullName: "Ben", TotalSolds: 25, TotalHours: 12, WorkingDays: 4},
		// Same solds as "a": more hours wins the tie.
		{SellerID: "c", FullName: "Cris", TotalSolds: 10, TotalHours: 31.5, WorkingDays: 7},
		// Same solds and hours as "a": more working days wins.
		{SellerID: "d", FullName: "Dee", TotalSolds: 10, TotalHours: 20, WorkingDays: 6},
		{SellerID: "e", FullName: "Eli", TotalSolds: 0, TotalHours: 0, WorkingDays: 0},
	}

	entries := rankRows(rows, false)
	require.Len(t, entries, 5)

	order := make([]string, 0, len(entries))
	for _, e := range entries {
		order = append(order, e.SellerID)
	}
	assert.Equal(t, []string{"b", "c", "d", "a", "e"}, order)

	// Ranks are 1-based positions with no gaps, ties included.
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}

	// Seller variant carries no earnings.
	for _, e := range entries {
		assert.Nil(t, e.TotalEarned)
	}
}

func TestRankRows_AdminEarnings(t *testing.T) {
	rows := []dashboard.SellerPerformanceRow{
		{SellerID: "a", ExperienceStatus: "tenured", TotalSolds: 5, TotalHours: 10},
		{SellerID: "b", ExperienceStatus: "newbie", TotalSolds: 3, TotalHours: 8},
	}

	entries := rankRows(rows, true)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].TotalEarned)
	assert.InDelta(t, 1500.0, *entries[0].TotalEarned, 0.001) // 10h * 150
	require.NotNil(t, entries[1].TotalEarned)
	assert.InDelta(t, 800.0, *entries[1].TotalEarned, 0.001) // 8h * 100
}

func TestRankRows_DoesNotMutateInput(t *testing.T) {
	rows := []dashboard.SellerPerformanceRow{
		{SellerID: "a", TotalSolds: 1},
		{SellerID: "b", TotalSolds: 9},
	}

	_ = rankRows(rows, false)

	assert.Equal(t, "a", rows[0].SellerID)
	assert.Equal(t, "b", rows[1].SellerID)
}

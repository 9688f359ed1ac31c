package stats

import (
	"context"

	"github.com/OPGLOL/opgl-wrapped/internal/models"
)

// ClientInterface defines the stats client operations
// This interface enables mocking in tests
type ClientInterface interface {
	// FetchPlayerStats retrieves the validated yearly stats report for a Riot ID
	FetchPlayerStats(ctx context.Context, identity models.PlayerIdentity) (models.StatsReport, error)

	// FetchAllGames retrieves one page of the player's match files
	FetchAllGames(ctx context.Context, identity models.PlayerIdentity, query GamesQuery) (*models.GamePage, error)

	// AnalyzeGame requests the analysis of a single match
	AnalyzeGame(ctx context.Context, identity models.PlayerIdentity, gameID string) (models.GameAnalysis, error)

	// FetchAccountData retrieves the account overview
	FetchAccountData(ctx context.Context, identity models.PlayerIdentity) (models.AccountData, error)

	// FetchMonthlyProgress retrieves the month-by-month progress for the year
	FetchMonthlyProgress(ctx context.Context, identity models.PlayerIdentity) (models.MonthlyProgress, error)

	// GetLatestDataDragonVersion returns the newest patch, or the fallback version on any failure
	GetLatestDataDragonVersion(ctx context.Context) string
}

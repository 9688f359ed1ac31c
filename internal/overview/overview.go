package overview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/OPGLOL/opgl-wrapped/internal/models"
	"github.com/OPGLOL/opgl-wrapped/internal/stats"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPages bounds CollectGames when the caller passes no limit
const DefaultMaxPages = 50

// Overview is everything the wrapped page shows for one player
type Overview struct {
	Identity          models.PlayerIdentity  `json:"identity"`
	Stats             models.StatsReport     `json:"stats"`
	Account           models.AccountData     `json:"account"`
	Progress          models.MonthlyProgress `json:"progress"`
	DataDragonVersion string                 `json:"ddragonVersion"`
	TotalPlaytime     string                 `json:"totalPlaytime,omitempty"`
}

// Service combines stats client calls for the CLI
type Service struct {
	client stats.ClientInterface
	logger zerolog.Logger
}

// NewService creates a new Service instance
func NewService(client stats.ClientInterface, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Load fetches stats, account data, monthly progress and the DataDragon version concurrently.
// The first failure cancels the remaining calls and is returned.
func (service *Service) Load(ctx context.Context, identity models.PlayerIdentity) (*Overview, error) {
	result := &Overview{Identity: identity}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result.Stats, err = service.client.FetchPlayerStats(gCtx, identity)
		return err
	})

	g.Go(func() error {
		var err error
		result.Account, err = service.client.FetchAccountData(gCtx, identity)
		return err
	})

	g.Go(func() error {
		var err error
		result.Progress, err = service.client.FetchMonthlyProgress(gCtx, identity)
		return err
	})

	g.Go(func() error {
		result.DataDragonVersion = service.client.GetLatestDataDragonVersion(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		service.logger.Error().Err(err).Str("riot_id", identity.RiotID()).Msg("failed to load overview")
		return nil, err
	}

	if seconds, ok := totalSeconds(result.Stats.Section("game_duration")); ok {
		result.TotalPlaytime = stats.FormatDuration(seconds)
	}

	return result, nil
}

// CollectGames walks pages from query.Page while the backend reports has_more,
// stopping after maxPages pages.
func (service *Service) CollectGames(ctx context.Context, identity models.PlayerIdentity, query stats.GamesQuery, maxPages int) ([]json.RawMessage, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if query.Page <= 0 {
		query.Page = stats.DefaultPage
	}

	files := []json.RawMessage{}
	for fetched := 0; fetched < maxPages; fetched++ {
		gamePage, err := service.client.FetchAllGames(ctx, identity, query)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", query.Page, err)
		}

		files = append(files, gamePage.Files...)
		if !gamePage.HasMore {
			return files, nil
		}
		query.Page = gamePage.Page + 1
	}

	service.logger.Warn().
		Str("riot_id", identity.RiotID()).
		Int("max_pages", maxPages).
		Msg("stopped collecting games at page limit")

	return files, nil
}

// totalSeconds reads game_duration when the backend sends it as a plain number of seconds
func totalSeconds(raw json.RawMessage) (int, bool) {
	var seconds float64
	if len(raw) == 0 || json.Unmarshal(raw, &seconds) != nil || seconds < 0 {
		return 0, false
	}
	return int(seconds), true
}

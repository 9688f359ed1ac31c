package stats

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/OPGLOL/opgl-wrapped/internal/errors"
	"github.com/OPGLOL/opgl-wrapped/internal/models"
)

// GamesQuery selects a page of match files. Zero values fall back to the defaults.
type GamesQuery struct {
	PUUID    *string
	Page     int
	PageSize int
}

// FetchPlayerStats retrieves the yearly stats report for a Riot ID.
// The region is accepted for symmetry with the other calls but the backend does not take it.
func (client *Client) FetchPlayerStats(ctx context.Context, identity models.PlayerIdentity) (models.StatsReport, error) {
	c := client.newCall("fetchPlayerStats")

	if err := validateIdentity(c.operation, identity); err != nil {
		return nil, c.fail(err)
	}

	requestBody := models.WrappedRequest{
		Name:    identity.GameName,
		GameTag: identity.GameTag,
	}

	body, err := client.send(ctx, c, http.MethodPost, client.statsURL+"/getWrapped", requestBody)
	if err != nil {
		return nil, c.fail(err)
	}

	var envelope struct {
		Content models.StatsReport `json:"content"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, c.fail(apierrors.DecodeFailed(c.operation, err))
	}

	if err := validateStatsReport(c.operation, envelope.Content); err != nil {
		return nil, c.fail(err)
	}

	return envelope.Content, nil
}

// FetchAllGames retrieves one page of match files. Missing response fields are
// filled from the request rather than treated as errors.
func (client *Client) FetchAllGames(ctx context.Context, identity models.PlayerIdentity, query GamesQuery) (*models.GamePage, error) {
	c := client.newCall("fetchAllGames")

	if err := validateIdentity(c.operation, identity); err != nil {
		return nil, c.fail(err)
	}

	page := query.Page
	if page <= 0 {
		page = DefaultPage
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	requestBody := models.AllGamesRequest{
		Region:   normalizeRegion(identity.Region),
		GameName: identity.GameName,
		GameTag:  identity.GameTag,
		PUUID:    query.PUUID,
		Page:     page,
		PageSize: pageSize,
	}

	body, err := client.send(ctx, c, http.MethodPost, client.statsURL+"/getAllGames", requestBody)
	if err != nil {
		return nil, c.fail(err)
	}

	var gamePage models.GamePage
	if err := json.Unmarshal(body, &gamePage); err != nil {
		return nil, c.fail(apierrors.DecodeFailed(c.operation, err))
	}

	if gamePage.Files == nil {
		gamePage.Files = []json.RawMessage{}
	}
	if gamePage.Page == 0 {
		gamePage.Page = page
	}
	if gamePage.PageSize == 0 {
		gamePage.PageSize = pageSize
	}

	return &gamePage, nil
}

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	apierrors "github.com/OPGLOL/opgl-wrapped/internal/errors"
	"github.com/OPGLOL/opgl-wrapped/internal/models"
)

// AnalyzeGame requests the analysis of one match.
// A 2xx body carrying an `error` field is reported as a soft error.
func (client *Client) AnalyzeGame(ctx context.Context, identity models.PlayerIdentity, gameID string) (models.GameAnalysis, error) {
	c := client.newCall("analyzeGame")

	if err := validateIdentity(c.operation, identity); err != nil {
		return nil, c.fail(err)
	}
	if strings.TrimSpace(gameID) == "" {
		return nil, c.fail(apierrors.InvalidInput(c.operation, "gameId is required"))
	}

	requestBody := models.AnalyzeRequest{
		Region:   normalizeRegion(identity.Region),
		GameName: identity.GameName,
		GameTag:  identity.GameTag,
		GameID:   gameID,
	}

	body, err := client.send(ctx, c, http.MethodPost, client.analysisURL+"/analyze", requestBody)
	if err != nil {
		return nil, c.fail(err)
	}

	payload, err := checkObjectPayload(c.operation, body)
	if err != nil {
		return nil, c.fail(err)
	}

	return models.GameAnalysis(payload), nil
}

// FetchAccountData retrieves the account overview for a Riot ID
func (client *Client) FetchAccountData(ctx context.Context, identity models.PlayerIdentity) (models.AccountData, error) {
	c := client.newCall("fetchAccountData")

	if err := validateIdentity(c.operation, identity); err != nil {
		return nil, c.fail(err)
	}

	body, err := client.send(ctx, c, http.MethodGet, client.analysisURL+"/accountdata?"+riotIDQuery(identity), nil)
	if err != nil {
		return nil, c.fail(err)
	}

	payload, err := checkObjectPayload(c.operation, body)
	if err != nil {
		return nil, c.fail(err)
	}

	return models.AccountData(payload), nil
}

// FetchMonthlyProgress retrieves the month-by-month progress for a Riot ID
func (client *Client) FetchMonthlyProgress(ctx context.Context, identity models.PlayerIdentity) (models.MonthlyProgress, error) {
	c := client.newCall("fetchMonthlyProgress")

	if err := validateIdentity(c.operation, identity); err != nil {
		return nil, c.fail(err)
	}

	body, err := client.send(ctx, c, http.MethodGet, client.analysisURL+"/summary_year?"+riotIDQuery(identity), nil)
	if err != nil {
		return nil, c.fail(err)
	}

	if message, ok := softError(body); ok {
		return nil, c.fail(apierrors.SoftError(c.operation, message))
	}

	var progress models.MonthlyProgress
	if err := json.Unmarshal(body, &progress); err != nil {
		return nil, c.fail(apierrors.DecodeFailed(c.operation, err))
	}
	if progress == nil {
		progress = models.MonthlyProgress{}
	}

	return progress, nil
}

// checkObjectPayload rejects bodies that are not JSON or that carry a soft error
func checkObjectPayload(operation string, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, apierrors.DecodeFailed(operation, errors.New("response is not valid JSON"))
	}
	if message, ok := softError(body); ok {
		return nil, apierrors.SoftError(operation, message)
	}
	return json.RawMessage(body), nil
}

func riotIDQuery(identity models.PlayerIdentity) string {
	query := url.Values{}
	query.Set("gamename", identity.GameName)
	query.Set("gametag", identity.GameTag)
	return query.Encode()
}

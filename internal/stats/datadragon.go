package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// GetLatestDataDragonVersion returns the newest DataDragon patch.
// Any failure is logged and answered with FallbackDataDragonVersion instead of an error.
func (client *Client) GetLatestDataDragonVersion(ctx context.Context) string {
	c := client.newCall("getLatestDataDragonVersion")

	body, err := client.send(ctx, c, http.MethodGet, client.dataDragonURL+"/api/versions.json", nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("fallback", FallbackDataDragonVersion).Msg("Error fetching DataDragon version")
		return FallbackDataDragonVersion
	}

	// First item is the latest version
	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		c.logger.Warn().Err(err).Str("fallback", FallbackDataDragonVersion).Msg("Error decoding DataDragon versions")
		return FallbackDataDragonVersion
	}
	if len(versions) == 0 || versions[0] == "" {
		c.logger.Warn().Str("fallback", FallbackDataDragonVersion).Msg("DataDragon returned no versions")
		return FallbackDataDragonVersion
	}

	return versions[0]
}

// ChampionImageURL builds the DataDragon square portrait URL for a champion.
// Everything but ASCII letters is dropped from the name ("Kai'Sa" -> "KaiSa").
func ChampionImageURL(championName string, version string) string {
	if version == "" {
		version = FallbackDataDragonVersion
	}

	cleanName := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, championName)

	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", DefaultDataDragonURL, version, cleanName)
}

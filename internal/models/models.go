package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlayerIdentity addresses a player by Riot ID (gameName#gameTag)
type PlayerIdentity struct {
	GameName string `json:"gameName"`
	GameTag  string `json:"gameTag"`
	Region   string `json:"region,omitempty"`
}

// Validate checks that both halves of the Riot ID are present
func (identity PlayerIdentity) Validate() error {
	if strings.TrimSpace(identity.GameName) == "" || strings.TrimSpace(identity.GameTag) == "" {
		return fmt.Errorf("gameName and gameTag are required")
	}
	return nil
}

// RiotID renders the identity as name#tag
func (identity PlayerIdentity) RiotID() string {
	return identity.GameName + "#" + identity.GameTag
}

// StatsReportSections lists the sections a wrapped stats report must carry, in check order
var StatsReportSections = []string{
	"game_duration",
	"role_champs_played",
	"deaths_stats",
	"kills_assists_stats",
	"metrics",
	"objectives",
}

// StatsReport is a yearly stats payload. Sections are kept as raw JSON.
type StatsReport map[string]json.RawMessage

// Section returns the raw JSON for a section, nil when absent
func (report StatsReport) Section(name string) json.RawMessage {
	return report[name]
}

// GamePage is one page of a player's match files
type GamePage struct {
	Files      []json.RawMessage `json:"files"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	HasMore    bool              `json:"has_more"`
	TotalFiles int               `json:"total_files"`
}

// GameAnalysis is the analysis of a single match
type GameAnalysis json.RawMessage

// MarshalJSON emits the payload as-is
func (analysis GameAnalysis) MarshalJSON() ([]byte, error) {
	return rawOrNull(analysis), nil
}

// AccountData is the account overview returned by the analysis host
type AccountData json.RawMessage

// MarshalJSON emits the payload as-is
func (account AccountData) MarshalJSON() ([]byte, error) {
	return rawOrNull(account), nil
}

// MonthlyProgress is the per-month progress of a player over the year
type MonthlyProgress []json.RawMessage

func rawOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}

// WrappedRequest is the body sent to /getWrapped
type WrappedRequest struct {
	Name    string `json:"name"`
	GameTag string `json:"gametag"`
}

// AllGamesRequest is the body sent to /getAllGames
type AllGamesRequest struct {
	Region   string  `json:"region"`
	GameName string  `json:"gamename"`
	GameTag  string  `json:"gametag"`
	PUUID    *string `json:"puuid"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// AnalyzeRequest is the body sent to /analyze
type AnalyzeRequest struct {
	Region   string `json:"region"`
	GameName string `json:"gamename"`
	GameTag  string `json:"gametag"`
	GameID   string `json:"gameid"`
}

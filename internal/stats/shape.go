package stats

import (
	"bytes"
	"encoding/json"

	apierrors "github.com/OPGLOL/opgl-wrapped/internal/errors"
	"github.com/OPGLOL/opgl-wrapped/internal/models"
)

// isFalsy reports whether a raw JSON value counts as absent:
// missing, null, false, zero or the empty string. Empty objects and arrays are present.
func isFalsy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	switch string(trimmed) {
	case "null", "false", `""`:
		return true
	}

	var number float64
	if json.Unmarshal(trimmed, &number) == nil {
		return number == 0
	}
	return false
}

// validateStatsReport fails on the first required section that is absent or falsy
func validateStatsReport(operation string, report models.StatsReport) error {
	for _, section := range models.StatsReportSections {
		if isFalsy(report[section]) {
			return apierrors.MissingSection(operation, section)
		}
	}
	return nil
}

// softError extracts a truthy top-level `error` field from a 2xx body.
// Non-object bodies never carry one.
func softError(body []byte) (string, bool) {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}
	if isFalsy(envelope.Error) {
		return "", false
	}

	var message string
	if err := json.Unmarshal(envelope.Error, &message); err == nil {
		return message, true
	}
	return string(bytes.TrimSpace(envelope.Error)), true
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/smartautorental/rentctl/internal/flagx"
	"github.com/smartautorental/rentctl/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the notice duration can be written either as a string
// like "2600ms" or as integer nanoseconds. After parsing, set values are
// copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	SessionFile    string          `json:"session_file"`
	NoticeDuration *timex.Duration `json:"notice_duration"`
	TopRentedLimit *int            `json:"top_rented_limit"`
	ReportBranchID string          `json:"report_branch_id"`
	ReportFrom     string          `json:"report_from"`
	ReportTo       string          `json:"report_to"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.NoticeDuration != nil {
		cfg.NoticeDuration = time.Duration(jc.NoticeDuration.Duration)
	}
	if jc.TopRentedLimit != nil {
		cfg.TopRentedLimit = *jc.TopRentedLimit
	}
	if jc.ReportBranchID != "" {
		cfg.ReportBranchID = jc.ReportBranchID
	}
	if jc.ReportFrom != "" {
		cfg.ReportFrom = jc.ReportFrom
	}
	if jc.ReportTo != "" {
		cfg.ReportTo = jc.ReportTo
	}
}

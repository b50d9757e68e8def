package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeedFlag is one entry of the flag seed list loaded at startup.
type SeedFlag struct {
	Code          string `json:"code"`
	Points        int    `json:"points"`
	ChallengeName string `json:"challenge_name"`
}

// defaultSeedFlags are the event flags used when no FLAGS_FILE is configured.
var defaultSeedFlags = []SeedFlag{
	{Code: "sillyCTF{bot}", Points: 10, ChallengeName: "Bot Challenge"},
	{Code: "sillyCTF{advanced}", Points: 25, ChallengeName: "Advanced Challenge"},
	{Code: "sillyCTF{secret}", Points: 50, ChallengeName: "Secret Challenge"},
}

// LoadSeedFlags returns the flag seed list, either from the configured JSON
// file or the built-in defaults. Entries with an empty code or non-positive
// points are rejected outright rather than silently skipped.
func LoadSeedFlags() ([]SeedFlag, error) {
	flags := defaultSeedFlags
	if FlagsFile != "" {
		data, err := os.ReadFile(FlagsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read flags file %s: %w", FlagsFile, err)
		}
		flags = nil
		if err := json.Unmarshal(data, &flags); err != nil {
			return nil, fmt.Errorf("failed to parse flags file %s: %w", FlagsFile, err)
		}
	}

	for _, f := range flags {
		if f.Code == "" {
			return nil, fmt.Errorf("flag seed list contains an empty code")
		}
		if f.Points <= 0 {
			return nil, fmt.Errorf("flag %q has non-positive points %d", f.Code, f.Points)
		}
		if f.ChallengeName == "" {
			return nil, fmt.Errorf("flag %q has no challenge name", f.Code)
		}
	}

	return flags, nil
}

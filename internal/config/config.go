// Package config loads table and console settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// UI modes
const (
	ModeReadline = "readline"
	ModeTUI      = "tui"
)

// Config represents the complete game configuration
type Config struct {
	Table TableSettings
	UI    UISettings
}

// file is the on-disk shape; both blocks may be omitted
type file struct {
	Table *TableSettings `hcl:"table,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// TableSettings contains the house rules
type TableSettings struct {
	DealerName   string `hcl:"dealer_name,optional"`
	DealerStands int    `hcl:"dealer_stands,optional"`
	MaxPlayers   int    `hcl:"max_players,optional"`
	ShortDeck    bool   `hcl:"short_deck,optional"`
}

// UISettings contains console settings
type UISettings struct {
	Mode        string `hcl:"mode,optional"`
	NoColor     bool   `hcl:"no_color,optional"`
	HistoryFile string `hcl:"history_file,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			DealerName:   "Dealer",
			DealerStands: 17,
			MaxPlayers:   7,
			ShortDeck:    false,
		},
		UI: UISettings{
			Mode:     ModeReadline,
			LogLevel: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(hclFile.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if raw.Table != nil {
		cfg.Table = *raw.Table
	}
	if raw.UI != nil {
		cfg.UI = *raw.UI
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Table.DealerName == "" {
		c.Table.DealerName = defaults.Table.DealerName
	}
	if c.Table.DealerStands == 0 {
		c.Table.DealerStands = defaults.Table.DealerStands
	}
	if c.Table.MaxPlayers == 0 {
		c.Table.MaxPlayers = defaults.Table.MaxPlayers
	}

	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.DealerStands < 12 || c.Table.DealerStands > 21 {
		return fmt.Errorf("dealer_stands must be between 12 and 21, got %d", c.Table.DealerStands)
	}

	if c.Table.MaxPlayers < 1 || c.Table.MaxPlayers > 7 {
		return fmt.Errorf("max_players must be between 1 and 7, got %d", c.Table.MaxPlayers)
	}

	validModes := map[string]bool{
		ModeReadline: true,
		ModeTUI:      true,
	}
	if !validModes[c.UI.Mode] {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

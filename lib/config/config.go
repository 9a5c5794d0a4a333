package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	General *GeneralConfig `toml:"general"`
	Restart *RestartConfig `toml:"restart"`
	API     *APIConfig     `toml:"api"`
}

type GeneralConfig struct {
	// UCIRoot is the UCI config directory (/etc/config on OpenWrt).
	UCIRoot string `toml:"uci_root" validate:"required"`
	// NetworkPackage is the UCI package holding interface sections.
	NetworkPackage string `toml:"network_package" validate:"required"`
	// DatastoreModule is the YANG module whose changes trigger reconciliation.
	DatastoreModule string `toml:"datastore_module" validate:"required"`
}

type RestartConfig struct {
	// Command is the init script invoked with a "restart" argument.
	Command string `toml:"command" validate:"required"`
	// DelaySeconds is how long to wait before restarting, giving UCI time
	// to settle after a commit.
	DelaySeconds uint `toml:"delay_seconds"`
}

type APIConfig struct {
	Enabled     *bool  `toml:"enabled"`
	BindAddress string `toml:"bind_address" validate:"omitempty,hostname_port"`
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	return &config, nil
}

// ValidateConfig fills in defaults for omitted sections and checks the
// result.
func (c *Config) ValidateConfig() error {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.UCIRoot == "" {
		c.General.UCIRoot = "/etc/config"
	}
	if c.General.NetworkPackage == "" {
		c.General.NetworkPackage = "network"
	}
	if c.General.DatastoreModule == "" {
		c.General.DatastoreModule = "ietf-interfaces"
	}

	if c.Restart == nil {
		c.Restart = &RestartConfig{}
	}
	if c.Restart.Command == "" {
		c.Restart.Command = "/etc/init.d/network"
	}
	if c.Restart.DelaySeconds == 0 {
		c.Restart.DelaySeconds = 2
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.Enabled == nil {
		def := true
		c.API.Enabled = &def
	}
	if c.API.BindAddress == "" {
		c.API.BindAddress = "127.0.0.1:8090"
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation is failed: %v", err)
	}
	return nil
}

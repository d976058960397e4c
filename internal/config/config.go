// Package config provides YAML-based configuration loading for the
// session driver.
package config

// PlayConfig contains all configuration for a play or run session.
type PlayConfig struct {
	Environment string         `yaml:"environment"` // Environment ID to drive
	TickRate    int            `yaml:"tick_rate"`   // Loop ticks per second
	Scale       int            `yaml:"scale"`       // Integer frame upscale factor
	Scripted    ScriptedConfig `yaml:"scripted"`
	DBPath      string         `yaml:"db_path"` // Episode database location
}

// ScriptedConfig parameterizes the headless scripted driver.
type ScriptedConfig struct {
	Steps     int `yaml:"steps"`      // Steps to run before stopping
	BlockSize int `yaml:"block_size"` // Steps each scripted direction is held
}

// Normalize fills zero-valued fields from the defaults so a partial YAML
// file still yields a usable config.
func (c *PlayConfig) Normalize() {
	def := DefaultPlayConfig()
	if c.Environment == "" {
		c.Environment = def.Environment
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.Scripted.Steps <= 0 {
		c.Scripted.Steps = def.Scripted.Steps
	}
	if c.Scripted.BlockSize <= 0 {
		c.Scripted.BlockSize = def.Scripted.BlockSize
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
}

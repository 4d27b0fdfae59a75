package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is read from the working directory when no -config is given.
const DefaultPath = "webwasp.hcl"

// Config is the console configuration, decoded from HCL:
//
//	required_version = ">= 0.1.0"
//	history_max      = 50
//	prompt           = "wasp> "
//	profile          = "headers.hcl"
//	watch_profile    = true
type Config struct {
	RequiredVersion string `hcl:"required_version,optional"`
	HistoryMax      int    `hcl:"history_max,optional"`
	Prompt          string `hcl:"prompt,optional"`
	Banner          bool   `hcl:"banner,optional"`
	Profile         string `hcl:"profile,optional"`
	WatchProfile    bool   `hcl:"watch_profile,optional"`
	RequestTimeout  string `hcl:"request_timeout,optional"`
}

func Default() Config {
	return Config{
		HistoryMax:     20,
		Prompt:         "> ",
		Banner:         true,
		RequestTimeout: "10s",
	}
}

// Load decodes the file at path over Default(). A missing file is only an
// error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("parse config %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return cfg, fmt.Errorf("decode config %s: %w", path, diags)
	}
	return cfg, nil
}

// Timeout parses RequestTimeout. Call Validate first.
func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.HistoryMax <= 0 {
		result = multierror.Append(result, fmt.Errorf("history_max must be greater than zero, got %d", c.HistoryMax))
	}
	if c.RequestTimeout != "" {
		if d, err := time.ParseDuration(c.RequestTimeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("request_timeout: %w", err))
		} else if d < 0 {
			result = multierror.Append(result, fmt.Errorf("request_timeout must not be negative"))
		}
	}
	if c.WatchProfile && c.Profile == "" {
		result = multierror.Append(result, errors.New("watch_profile requires profile"))
	}
	if c.RequiredVersion != "" {
		if err := CheckRequiredVersion(c.RequiredVersion, Version); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

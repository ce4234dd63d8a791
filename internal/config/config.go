// Package config provides configuration management for unit-scout
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig initializes the application configuration.
	InitConfig() *Settings
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// defaultConfigProvider implements the Provider interface.
type defaultConfigProvider struct {
	cfg *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

// NewStaticProvider returns a Provider pinned to the given settings.
// Useful once flags have been folded into an already-initialized config.
func NewStaticProvider(c *Settings) Provider {
	return &defaultConfigProvider{cfg: c}
}

var defaultProvider = NewDefaultConfigProvider()
var cfg *Settings

// Default configuration values for unit-scout. These constants define
// the defaults for the systemctl binary, query timeouts, listing source
// selection, user mode, and verbosity.
const (
	DefaultSystemctlPath  = "systemctl"
	DefaultCommandTimeout = 15 * time.Second
	DefaultUseDBus        = false
	DefaultUserMode       = false
	DefaultVerbose        = false
)

// Settings represents the configuration for unit-scout. It contains the
// path of the systemctl binary, the per-query timeout, whether listings
// come from D-Bus instead of systemctl, user mode, and verbosity.
type Settings struct {
	SystemctlPath  string        `yaml:"systemctlPath"`
	CommandTimeout time.Duration `yaml:"commandTimeout"`
	UseDBus        bool          `yaml:"useDBus"`
	UserMode       bool          `yaml:"userMode"`
	Verbose        bool          `yaml:"verbose"`
}

// Implementation of ConfigProvider methods for defaultConfigProvider

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	viper.SetConfigFile(path)
}

func (p *defaultConfigProvider) InitConfig() *Settings {
	p.cfg = initConfigInternal()
	return p.cfg
}

// For backward compatibility - pass through to default provider

// SetConfig sets the application configuration.
func SetConfig(c *Settings) {
	defaultProvider.SetConfig(c)
	cfg = c
}

// GetConfig returns the current application configuration.
func GetConfig() *Settings {
	return defaultProvider.GetConfig()
}

// SetConfigFilePath sets the configuration file path.
func SetConfigFilePath(p string) {
	defaultProvider.SetConfigFilePath(p)
}

// InitConfig initializes the application configuration.
func InitConfig() *Settings {
	cfg = defaultProvider.InitConfig()
	return cfg
}

// Internal function to initialize configuration.
func initConfigInternal() *Settings {
	cfg := &Settings{
		SystemctlPath:  DefaultSystemctlPath,
		CommandTimeout: DefaultCommandTimeout,
		UseDBus:        DefaultUseDBus,
		UserMode:       DefaultUserMode,
		Verbose:        DefaultVerbose,
	}

	viper.SetDefault("systemctlPath", DefaultSystemctlPath)
	viper.SetDefault("commandTimeout", DefaultCommandTimeout)
	viper.SetDefault("useDBus", DefaultUseDBus)
	viper.SetDefault("userMode", DefaultUserMode)
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(os.ExpandEnv("$HOME/.config/unit-scout"))
	viper.AddConfigPath("/etc/opt/unit-scout")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		panic(err)
	}

	return cfg
}

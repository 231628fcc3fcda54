package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/escrownet/escrowd/infrastructure/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "escrowd.conf"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultLogFilename    = "escrowd.log"
	defaultErrLogFilename = "escrowd_err.log"
)

var (
	// DefaultHomeDir is the default home directory for escrowd.
	DefaultHomeDir = btcutil.AppDataDir("escrowd", false)

	defaultConfigFile = filepath.Join(DefaultHomeDir, defaultConfigFilename)
)

// Flags holds the command line flags common to all escrowd tools.
type Flags struct {
	ShowVersion           bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile            string `short:"C" long:"configfile" description:"Path to configuration file"`
	HomeDir               string `short:"b" long:"homedir" description:"Directory to store data"`
	LogDir                string `long:"logdir" description:"Directory to log output"`
	DebugLevel            string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	AllowFaultyDelayedTxs bool   `long:"allowfaultydelayedtxs" description:"Downgrade delayed payout transaction validation failures to warnings instead of blocking the trade"`
	DonationAddress       string `long:"donationaddress" description:"Override the sanctioned donation address of the active network"`
	NetworkFlags
}

// Config wraps the parsed flags.
type Config struct {
	*Flags
}

func defaultFlags() *Flags {
	return &Flags{
		ConfigFile: defaultConfigFile,
		HomeDir:    DefaultHomeDir,
		DebugLevel: defaultLogLevel,
	}
}

// DonationAddressOrDefault returns the configured donation address
// override, or the active network's default when no override was given.
func (c *Config) DonationAddressOrDefault() string {
	if c.DonationAddress != "" {
		return c.DonationAddress
	}
	return c.NetParams().DonationAddress
}

// LogFile returns the path of the normal log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the error log file.
func (c *Config) ErrLogFile() string {
	return filepath.Join(c.LogDir, defaultErrLogFilename)
}

// LoadConfig loads the configuration from the command line and an optional
// config file, resolves the active network and applies the configured log
// levels.
func LoadConfig() (*Config, error) {
	cfgFlags := defaultFlags()
	parser := flags.NewParser(cfgFlags, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; the default one is
	// optional.
	if cfgFlags.ConfigFile != defaultConfigFile {
		if _, err := os.Stat(cfgFlags.ConfigFile); os.IsNotExist(err) {
			return nil, errors.Errorf("config file %s does not exist", cfgFlags.ConfigFile)
		}
	}
	err = flags.NewIniParser(parser).ParseFile(cfgFlags.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, errors.Wrapf(err, "error parsing config file %s", cfgFlags.ConfigFile)
		}
	}

	err = cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Flags: cfgFlags}

	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname,
			strings.ToLower(cfg.NetParams().Name))
	}

	if cfg.DonationAddressOrDefault() == "" {
		return nil, errors.Errorf("network %s has no default donation address, "+
			"--donationaddress is required", cfg.NetParams().Name)
	}

	_, err = btcutil.DecodeAddress(cfg.DonationAddressOrDefault(), cfg.NetParams().Params)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid donation address %q for network %s",
			cfg.DonationAddressOrDefault(), cfg.NetParams().Name)
	}

	err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
	if err != nil {
		return nil, err
	}

	log.Debugf("Active network: %s", cfg.NetParams().Name)
	return cfg, nil
}

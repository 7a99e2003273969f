package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/guregu/null.v3"
)

const (
	// ConfigFilename is the project file at the root of every Mix project.
	ConfigFilename = "mix.conf"
	// DefaultEntry is the entry file used when mix.conf does not name one.
	DefaultEntry = "src/main.mx"
	// SourceExt is the extension of Mix source files.
	SourceExt = ".mx"
)

var (
	ErrNoConfig      = errors.New("project file " + ConfigFilename + " not found")
	ErrInvalidConfig = errors.New("invalid project configuration")
)

// Config is the content of mix.conf plus the settings that can only come from
// the environment or the command line. Every field is nullable so layers can
// be merged with Apply.
type Config struct {
	Name     null.String `json:"name" ignored:"true"`
	Version  null.String `json:"version" ignored:"true"`
	Author   null.String `json:"author" ignored:"true"`
	Packages []string    `json:"packages" ignored:"true"`

	// Entry is the slash-separated path of the main source file, relative to
	// the project directory.
	Entry null.String `json:"entry" envconfig:"MIX_ENTRY"`
	// Sources lists extra directories, relative to the project directory,
	// whose .mx files are built along with the entry file.
	Sources []string `json:"sources,omitempty" ignored:"true"`

	LogLevel null.String `json:"-" envconfig:"MIX_LOG_LEVEL"`
	NoColor  null.Bool   `json:"-" envconfig:"MIX_NO_COLOR"`
	Jobs     null.Int    `json:"-" envconfig:"MIX_JOBS"`
}

// NewConfig returns the defaults. None of the values are marked as set, so
// any other layer overrides them.
func NewConfig() Config {
	return Config{
		Entry:    null.NewString(DefaultEntry, false),
		LogLevel: null.NewString(logrus.InfoLevel.String(), false),
		NoColor:  null.NewBool(false, false),
		Jobs:     null.NewInt(0, false),
	}
}

// Apply returns c with every value that is set in cfg copied over it.
func (c Config) Apply(cfg Config) Config {
	if cfg.Name.Valid {
		c.Name = cfg.Name
	}
	if cfg.Version.Valid {
		c.Version = cfg.Version
	}
	if cfg.Author.Valid {
		c.Author = cfg.Author
	}
	if cfg.Packages != nil {
		c.Packages = cfg.Packages
	}
	if cfg.Entry.Valid {
		c.Entry = cfg.Entry
	}
	if cfg.Sources != nil {
		c.Sources = cfg.Sources
	}
	if cfg.LogLevel.Valid {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.NoColor.Valid {
		c.NoColor = cfg.NoColor
	}
	if cfg.Jobs.Valid {
		c.Jobs = cfg.Jobs
	}
	return c
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	var errs []error

	entry := c.Entry.String
	switch {
	case entry == "":
		errs = append(errs, errors.New("entry must not be empty"))
	case path.IsAbs(entry) || filepath.IsAbs(entry):
		errs = append(errs, fmt.Errorf("entry %q must be relative to the project directory", entry))
	case !strings.HasSuffix(entry, SourceExt):
		errs = append(errs, fmt.Errorf("entry %q is not a %s file", entry, SourceExt))
	}

	for _, src := range c.Sources {
		if path.IsAbs(src) || filepath.IsAbs(src) {
			errs = append(errs, fmt.Errorf("source directory %q must be relative to the project directory", src))
		}
	}

	if c.Jobs.Int64 < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs.Int64))
	}

	if c.LogLevel.String != "" {
		if _, err := logrus.ParseLevel(c.LogLevel.String); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ReadConfig reads dir/mix.conf.
func ReadConfig(fs afero.Fs, dir string) (Config, error) {
	file := filepath.Join(dir, ConfigFilename)

	data, err := afero.ReadFile(fs, file)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w in %s", ErrNoConfig, dirName(dir))
	}
	if err != nil {
		return Config{}, err
	}

	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("%s: %w: %v", file, ErrInvalidConfig, err)
	}
	return conf, nil
}

// WriteConfig writes conf to dir/mix.conf.
func WriteConfig(fs afero.Fs, dir string, conf Config) error {
	data, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filepath.Join(dir, ConfigFilename), append(data, '\n'), 0o644)
}

// ReadEnvConfig reads the MIX_* variables from env.
func ReadEnvConfig(env map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return conf, nil
}

// Load reads dir/mix.conf and merges it over the defaults, then applies the
// given layers in order (typically environment, then command-line flags).
func Load(fs afero.Fs, dir string, layers ...Config) (Config, error) {
	fileConf, err := ReadConfig(fs, dir)
	if err != nil {
		return Config{}, err
	}

	conf := NewConfig().Apply(fileConf)
	for _, layer := range layers {
		conf = conf.Apply(layer)
	}
	return conf, conf.Validate()
}

func dirName(dir string) string {
	if dir == "" || dir == "." {
		return "the current directory"
	}
	return dir
}

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/oerror"
	"github.com/oomph-ac/slide/slide"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultArchetype is the archetype characters use when none is specified.
const DefaultArchetype = "default"

// Settings contains everything that can be configured for the slide simulator.
type Settings struct {
	// TickRate is the amount of simulation ticks per second.
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`
	// Workers is the amount of tick workers. Zero uses one per CPU.
	Workers int `toml:"workers" yaml:"workers"`
	// HistorySize is the amount of ticks of slide history kept per character. Zero uses
	// the default.
	HistorySize int `toml:"history_size" yaml:"history_size"`

	Log    Log    `toml:"log" yaml:"log"`
	Stats  Stats  `toml:"stats" yaml:"stats"`
	Sentry Sentry `toml:"sentry" yaml:"sentry"`

	// Archetypes maps character archetype names, such as "heavy", to their slide tuning.
	Archetypes map[string]slide.Tuning `toml:"archetypes" yaml:"archetypes"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	// File is the file logs are written to. Empty logs to stderr.
	File string `toml:"file" yaml:"file"`
}

// Stats configures the runtime statistics viewer.
type Stats struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Addr    string `toml:"addr" yaml:"addr"`
}

// Sentry configures panic reporting. An empty DSN disables it.
type Sentry struct {
	DSN         string `toml:"dsn" yaml:"dsn"`
	Environment string `toml:"environment" yaml:"environment"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	heavy := slide.DefaultTuning()
	heavy.WeightFactor = 0.5

	return Settings{
		TickRate:    game.DefaultTickRate,
		HistorySize: 100,
		Log:         Log{Level: "info"},
		Stats:       Stats{Addr: "localhost:8080"},
		Sentry:      Sentry{Environment: "development"},
		Archetypes: map[string]slide.Tuning{
			DefaultArchetype: slide.DefaultTuning(),
			"heavy":          heavy,
		},
	}
}

// TickDelta returns the duration of a single tick in seconds.
func (s Settings) TickDelta() float64 {
	return 1 / float64(s.TickRate)
}

// Tuning returns the tuning of the archetype passed. An empty name returns the default
// archetype.
func (s Settings) Tuning(archetype string) (slide.Tuning, error) {
	if archetype == "" {
		archetype = DefaultArchetype
	}
	t, ok := s.Archetypes[archetype]
	if !ok {
		return slide.Tuning{}, oerror.New(game.ErrorUnknownArchetype, archetype)
	}
	return t, nil
}

// ArchetypeNames returns the names of all archetypes in sorted order.
func (s Settings) ArchetypeNames() []string {
	names := make([]string, 0, len(s.Archetypes))
	for name := range s.Archetypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LogLevel parses the configured log level.
func (s Settings) LogLevel() (logrus.Level, error) {
	if s.Log.Level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return 0, oerror.New("invalid log level %q", s.Log.Level)
	}
	return lvl, nil
}

// Validate checks the settings and every archetype's tuning.
func (s Settings) Validate() error {
	if s.TickRate <= 0 {
		return oerror.New("tick rate must be positive, got %d", s.TickRate)
	}
	if s.Workers < 0 {
		return oerror.New("workers must not be negative, got %d", s.Workers)
	}
	if s.HistorySize < 0 {
		return oerror.New("history size must not be negative, got %d", s.HistorySize)
	}
	if _, err := s.LogLevel(); err != nil {
		return err
	}
	if _, ok := s.Archetypes[DefaultArchetype]; !ok {
		return oerror.New("missing %q archetype", DefaultArchetype)
	}
	for _, name := range s.ArchetypeNames() {
		if err := s.Archetypes[name].Validate(); err != nil {
			return oerror.New("archetype %q: %v", name, err)
		}
	}
	return nil
}

// Load loads settings from a TOML or YAML file, picked by its extension. If the file does
// not exist, the default settings are written to it and returned.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s := DefaultSettings()
		return s, Save(path, s)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %v", err)
	}
	s, err := Decode(path, data)
	if err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

// Decode decodes settings in the format matching the extension of path. Values missing from
// data keep their defaults. Configured archetypes replace the default ones, and values an
// archetype leaves out are taken from the default archetype of the same name, or from
// slide.DefaultTuning if there is none.
func Decode(path string, data []byte) (Settings, error) {
	s := DefaultSettings()
	s.Archetypes = nil

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &s)
	case ".yaml", ".yml":
		err = decodeYAML(data, &s)
	default:
		return Settings{}, oerror.New(game.ErrorUnsupportedFormat, ext)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %v", err)
	}
	s.fillDefaults()
	return s, nil
}

func decodeTOML(data []byte, s *Settings) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	if err := tree.Unmarshal(s); err != nil {
		return err
	}

	archetypes, ok := tree.GetPath([]string{"archetypes"}).(*toml.Tree)
	if !ok {
		return nil
	}
	s.Archetypes = make(map[string]slide.Tuning)
	for _, name := range archetypes.Keys() {
		values, ok := archetypes.GetPath([]string{name}).(*toml.Tree)
		if !ok {
			return oerror.New("archetype %q must be a table", name)
		}
		defaults, err := toml.Marshal(archetypeDefaults(name))
		if err != nil {
			return err
		}
		merged, err := toml.LoadBytes(defaults)
		if err != nil {
			return err
		}
		mergeTree(merged, values)

		var tuning slide.Tuning
		if err := merged.Unmarshal(&tuning); err != nil {
			return oerror.New("archetype %q: %v", name, err)
		}
		s.Archetypes[name] = tuning
	}
	return nil
}

// mergeTree copies every value of src into dst, descending into tables present in both.
func mergeTree(dst, src *toml.Tree) {
	for _, key := range src.Keys() {
		path := []string{key}
		value := src.GetPath(path)
		if table, ok := value.(*toml.Tree); ok {
			if existing, ok := dst.GetPath(path).(*toml.Tree); ok {
				mergeTree(existing, table)
				continue
			}
		}
		dst.SetPath(path, value)
	}
}

func decodeYAML(data []byte, s *Settings) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return err
	}

	var raw struct {
		Archetypes map[string]yaml.Node `yaml:"archetypes"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Archetypes) == 0 {
		return nil
	}
	s.Archetypes = make(map[string]slide.Tuning, len(raw.Archetypes))
	for name, node := range raw.Archetypes {
		tuning := archetypeDefaults(name)
		if err := node.Decode(&tuning); err != nil {
			return oerror.New("archetype %q: %v", name, err)
		}
		s.Archetypes[name] = tuning
	}
	return nil
}

// archetypeDefaults returns the tuning an archetype starts from before its configured values
// are applied.
func archetypeDefaults(name string) slide.Tuning {
	if tuning, ok := DefaultSettings().Archetypes[name]; ok {
		return tuning
	}
	return slide.DefaultTuning()
}

func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.TickRate == 0 {
		s.TickRate = def.TickRate
	}
	if s.HistorySize == 0 {
		s.HistorySize = def.HistorySize
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	if s.Stats.Addr == "" {
		s.Stats.Addr = def.Stats.Addr
	}
	if len(s.Archetypes) == 0 {
		s.Archetypes = def.Archetypes
	}
}

// Encode encodes settings in the format matching the extension of path.
func Encode(path string, s Settings) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Marshal(s)
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	default:
		return nil, oerror.New(game.ErrorUnsupportedFormat, ext)
	}
}

// Save writes settings to path.
func Save(path string, s Settings) error {
	data, err := Encode(path, s)
	if err != nil {
		return fmt.Errorf("failed encoding settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing settings file: %v", err)
	}
	return nil
}

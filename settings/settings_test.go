package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/slide/slide"
	"github.com/sirupsen/logrus"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected default settings to be valid: %v", err)
	}
	if s.TickDelta() != 1.0/50 {
		t.Fatalf("expected a tick delta of 1/50, got %v", s.TickDelta())
	}
	tuning, err := s.Tuning("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tuning != slide.DefaultTuning() {
		t.Fatal("expected the default archetype to use the default tuning")
	}
	if _, err := s.Tuning("ghost"); err == nil {
		t.Fatal("expected an error for an unknown archetype")
	}
}

func TestLoadWritesDefaults(t *testing.T) {
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			s, err := Load(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("expected default settings to be written: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("unexpected error reloading settings: %v", err)
			}
			if loaded.TickRate != s.TickRate || loaded.HistorySize != s.HistorySize {
				t.Fatalf("expected reloaded settings to match, got %+v", loaded)
			}
			if loaded.Archetypes["heavy"] != s.Archetypes["heavy"] {
				t.Fatalf("expected heavy archetype to survive a round trip, got %+v", loaded.Archetypes["heavy"])
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
tick_rate: 20
log:
  level: debug
stats:
  enabled: true
`)
	s, err := Decode("settings.yml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TickRate != 20 || !s.Stats.Enabled {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if lvl, _ := s.LogLevel(); lvl != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", lvl)
	}
	if s.Stats.Addr != "localhost:8080" || s.HistorySize != 100 {
		t.Fatalf("expected missing values to use defaults, got %+v", s)
	}
	if _, ok := s.Archetypes[DefaultArchetype]; !ok {
		t.Fatal("expected default archetypes when none are configured")
	}
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
tick_rate = 60

[archetypes.default]
initial_boost = 10.0
base_friction = 0.9
air_friction = 0.99
gravity = 30.0
start_cost = 0.1
drain_rate = 0.0
stop_threshold = 0.1
weight_factor = 1.0
cast_distance = 20.0
collision_mask = 1

[archetypes.default.slide_material]
name = "ice"
static_friction = 0.05
dynamic_friction = 0.05
`)
	s, err := Decode("settings.toml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected decoded settings to be valid: %v", err)
	}
	tuning, _ := s.Tuning(DefaultArchetype)
	if tuning.InitialBoost != 10 || tuning.CollisionMask != 1 || tuning.SlideMaterial.Name != "ice" {
		t.Fatalf("unexpected tuning: %+v", tuning)
	}
	if len(s.Archetypes) != 1 {
		t.Fatalf("expected configured archetypes to replace the defaults, got %v", s.ArchetypeNames())
	}
}

func TestDecodePartialArchetypes(t *testing.T) {
	tests := map[string]string{
		"settings.toml": `
[archetypes.default]
initial_boost = 20.0

[archetypes.heavy]
base_friction = 0.9

[archetypes.light]
weight_factor = 2.0

[archetypes.light.slide_material]
name = "ice"
`,
		"settings.yaml": `
archetypes:
  default:
    initial_boost: 20
  heavy:
    base_friction: 0.9
  light:
    weight_factor: 2
    slide_material:
      name: ice
`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Decode(name, []byte(data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := s.Validate(); err != nil {
				t.Fatalf("expected partial archetypes to be valid: %v", err)
			}

			want := slide.DefaultTuning()
			want.InitialBoost = 20
			if got := s.Archetypes[DefaultArchetype]; got != want {
				t.Fatalf("expected default archetype %+v, got %+v", want, got)
			}

			want = DefaultSettings().Archetypes["heavy"]
			want.BaseFriction = 0.9
			if got := s.Archetypes["heavy"]; got != want {
				t.Fatalf("expected heavy archetype %+v, got %+v", want, got)
			}

			want = slide.DefaultTuning()
			want.WeightFactor = 2
			want.SlideMaterial.Name = "ice"
			if got := s.Archetypes["light"]; got != want {
				t.Fatalf("expected light archetype %+v, got %+v", want, got)
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := Decode("settings.json", []byte("{}")); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	if err := Save(filepath.Join(t.TempDir(), "settings.ini"), DefaultSettings()); err == nil {
		t.Fatal("expected an error saving an unsupported format")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(s *Settings){
		"tick rate":    func(s *Settings) { s.TickRate = -1 },
		"workers":      func(s *Settings) { s.Workers = -2 },
		"history size": func(s *Settings) { s.HistorySize = -5 },
		"log level":    func(s *Settings) { s.Log.Level = "loud" },
		"no default":   func(s *Settings) { delete(s.Archetypes, DefaultArchetype) },
		"bad tuning": func(s *Settings) {
			tn := s.Archetypes["heavy"]
			tn.StopThreshold = 0
			s.Archetypes["heavy"] = tn
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := DefaultSettings()
			mutate(&s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected settings to be invalid")
			}
		})
	}
}

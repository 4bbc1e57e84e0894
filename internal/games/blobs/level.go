package blobs

import (
	"fmt"

	"github.com/vovakirdan/blob-arcade/internal/config"
)

// DefaultLevelLength is the finish-line distance used when neither the level
// nor the config provides one.
const DefaultLevelLength = 10000.0

// Population overrides the spawn count and size bounds of one obstacle kind.
// A nil Count or zero size keeps the configured default; a non-positive
// Count spawns nothing.
type Population struct {
	Count   *int
	MinSize float64
	MaxSize float64
}

// resolve merges the override with the configured defaults.
func (p Population) resolve(def config.PopulationConfig) config.PopulationConfig {
	out := def
	if p.Count != nil {
		out.Count = max(*p.Count, 0)
	}
	if p.MinSize > 0 {
		out.MinSize = p.MinSize
	}
	if p.MaxSize > 0 {
		out.MaxSize = p.MaxSize
	}
	out.Count = max(out.Count, 0)
	return out
}

// SizeBand is the radius window a player must occupy at the finish line.
type SizeBand struct {
	Min *float64
	Max *float64
}

// Compare returns -1 when r is below the band, 1 when above, 0 inside.
// A nil band accepts everything.
func (b *SizeBand) Compare(r float64) int {
	if b == nil {
		return 0
	}
	if b.Min != nil && r < *b.Min {
		return -1
	}
	if b.Max != nil && r > *b.Max {
		return 1
	}
	return 0
}

// String formats the band for the HUD.
func (b *SizeBand) String() string {
	switch {
	case b == nil, b.Min == nil && b.Max == nil:
		return "any"
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("%g..%g", *b.Min, *b.Max)
	case b.Min != nil:
		return fmt.Sprintf(">=%g", *b.Min)
	default:
		return fmt.Sprintf("<=%g", *b.Max)
	}
}

// Level is a declarative level descriptor.
type Level struct {
	Title       string
	Description string
	Length      float64 // 0 uses the config default
	Enemies     Population
	Tunnels     Population // MinSize/MaxSize unused
	Splitters   Population // MinSize/MaxSize unused
	EndSize     *SizeBand
	TunnelBonus int // Points per tunnel passed
	Script      Script
}

// length returns the finish-line distance, falling back to def and then
// DefaultLevelLength.
func (l Level) length(def float64) float64 {
	switch {
	case l.Length > 0:
		return l.Length
	case def > 0:
		return def
	default:
		return DefaultLevelLength
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// DefaultLevels returns the built-in campaign.
func DefaultLevels() []Level {
	return []Level{
		{
			Title:       "Warm-up",
			Description: "Eat the small ones, dodge the big ones.",
			Length:      6000,
		},
		{
			Title:       "Bulk up",
			Description: "Reach the finish with a radius of at least 25.",
			EndSize:     &SizeBand{Min: floatPtr(25)},
		},
		{
			Title:       "Slim down",
			Description: "Finish with a radius of at most 8. Splitters help.",
			Splitters:   Population{Count: intPtr(8)},
			EndSize:     &SizeBand{Max: floatPtr(8)},
		},
		{
			Title:       "Tunnel run",
			Description: "Thread the gaps. Every tunnel passed is worth 200.",
			Tunnels:     Population{Count: intPtr(4)},
			Enemies:     Population{Count: intPtr(40)},
			TunnelBonus: 200,
		},
		{
			Title:       "Against the clock",
			Description: "Finish within 60 seconds at a radius between 15 and 40.",
			EndSize:     &SizeBand{Min: floatPtr(15), Max: floatPtr(40)},
			Script:      Script{Kind: ScriptCountdown, Seconds: 60},
		},
		{
			Title:       "Shifting tides",
			Description: "Every few seconds the blobs change size.",
			Length:      12000,
			EndSize:     &SizeBand{Min: floatPtr(12)},
			Script:      Script{Kind: ScriptResizeWave, Interval: 5, MinSize: 5, MaxSize: 40},
		},
		{
			Title:       "Big start",
			Description: "You start huge. Finish with a radius of at most 20.",
			EndSize:     &SizeBand{Max: floatPtr(20)},
			Script:      Script{Kind: ScriptFixedSetup, PlayerRadius: 40},
		},
	}
}

// LevelsFromConfig converts YAML level descriptors into levels.
// Unknown script kinds behave as ScriptNone.
func LevelsFromConfig(lcs []config.LevelConfig) []Level {
	levels := make([]Level, 0, len(lcs))
	for i, lc := range lcs {
		l := Level{
			Title:       lc.Title,
			Description: lc.Description,
			Length:      lc.Length,
			Enemies:     populationFromConfig(lc.Enemies),
			Tunnels:     populationFromConfig(lc.Tunnels),
			Splitters:   populationFromConfig(lc.Splitters),
			TunnelBonus: max(lc.TunnelBonus, 0),
		}
		if l.Title == "" {
			l.Title = fmt.Sprintf("Level %d", i+1)
		}
		if lc.EndSize != nil && (lc.EndSize.Min != nil || lc.EndSize.Max != nil) {
			l.EndSize = &SizeBand{Min: lc.EndSize.Min, Max: lc.EndSize.Max}
		}
		if lc.Script != nil {
			l.Script = Script{
				Kind:         ParseScriptKind(lc.Script.Kind),
				Seconds:      lc.Script.Seconds,
				Interval:     lc.Script.Interval,
				MinSize:      lc.Script.MinSize,
				MaxSize:      lc.Script.MaxSize,
				PlayerRadius: lc.Script.PlayerRadius,
			}
		}
		levels = append(levels, l)
	}
	return levels
}

// LevelsToConfig converts levels into their YAML form.
func LevelsToConfig(levels []Level) []config.LevelConfig {
	out := make([]config.LevelConfig, 0, len(levels))
	for _, l := range levels {
		lc := config.LevelConfig{
			Title:       l.Title,
			Description: l.Description,
			Length:      l.Length,
			Enemies:     populationToConfig(l.Enemies),
			Tunnels:     populationToConfig(l.Tunnels),
			Splitters:   populationToConfig(l.Splitters),
			TunnelBonus: l.TunnelBonus,
		}
		if l.EndSize != nil {
			lc.EndSize = &config.SizeBandConfig{Min: l.EndSize.Min, Max: l.EndSize.Max}
		}
		if l.Script.Kind != ScriptNone {
			lc.Script = &config.ScriptConfig{
				Kind:         l.Script.Kind.String(),
				Seconds:      l.Script.Seconds,
				Interval:     l.Script.Interval,
				MinSize:      l.Script.MinSize,
				MaxSize:      l.Script.MaxSize,
				PlayerRadius: l.Script.PlayerRadius,
			}
		}
		out = append(out, lc)
	}
	return out
}

func populationFromConfig(p *config.PopulationOverride) Population {
	if p == nil {
		return Population{}
	}
	var out Population
	if p.Count != nil {
		out.Count = intPtr(*p.Count)
	}
	if p.MinSize != nil {
		out.MinSize = *p.MinSize
	}
	if p.MaxSize != nil {
		out.MaxSize = *p.MaxSize
	}
	return out
}

func populationToConfig(p Population) *config.PopulationOverride {
	if p.Count == nil && p.MinSize == 0 && p.MaxSize == 0 {
		return nil
	}
	out := &config.PopulationOverride{}
	if p.Count != nil {
		out.Count = intPtr(*p.Count)
	}
	if p.MinSize > 0 {
		out.MinSize = floatPtr(p.MinSize)
	}
	if p.MaxSize > 0 {
		out.MaxSize = floatPtr(p.MaxSize)
	}
	return out
}

// Package pipeline drives terrain generation one tick at a time through a
// fixed list of stages and reports progress for the UI.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/gen"
	"github.com/Faultbox/terragen/internal/heightmap"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/terrain"
)

var (
	// ErrFinished is returned by Step once every stage has completed.
	ErrFinished = errors.New("generation finished")

	// ErrStepLimit is returned by RunToCompletion when it runs out of steps.
	ErrStepLimit = errors.New("step limit reached")
)

// Stage names outside the configurable generation stages.
const (
	StageWarmup = "warmup"
	StageMesh   = "mesh"
	StageDone   = "done"
)

// Settings is the fixed configuration of a run.
type Settings struct {
	Terrain terrain.Settings

	Stages           []string
	NoiseBackend     string
	BaseFrequency    float64
	FractalBudget    int
	FractalRoughness float32
	ErosionDrops     int
	ErosionStrength  float32
	ErosionMaxTicks  int
	SmoothPasses     int
}

// SettingsFromConfig extracts run settings from the application config.
func SettingsFromConfig(cfg *config.Config) Settings {
	g := cfg.Generation
	return Settings{
		Terrain: terrain.Settings{
			Size:        cfg.Terrain.UnitCount,
			UnitSize:    cfg.Terrain.UnitSize,
			HeightScale: cfg.Terrain.HeightScale,
		},
		Stages:           append([]string(nil), g.Stages...),
		NoiseBackend:     g.NoiseBackend,
		BaseFrequency:    g.BaseFrequency,
		FractalBudget:    g.FractalBudget,
		FractalRoughness: g.FractalRoughness,
		ErosionDrops:     g.ErosionDrops,
		ErosionStrength:  g.ErosionStrength,
		ErosionMaxTicks:  g.ErosionMaxTicks,
		SmoothPasses:     g.SmoothPasses,
	}
}

type stageFunc func(p *Pipeline) error

type stage struct {
	name string
	run  stageFunc
}

// Pipeline owns one heightmap, its tracker and the transient state of the
// incremental stages. It is not safe for concurrent use.
type Pipeline struct {
	settings Settings
	stages   []stage
	rng      *gen.Rand
	log      *zap.Logger

	hf      *heightmap.HeightField
	tracker Tracker
	fractal *gen.Fractal
	erosion *gen.Erosion
	passes  int
	mesh    *terrain.Mesh
}

// New builds the stage table for s and prepares a run on rng's current map
// seed.
func New(s Settings, rng *gen.Rand) (*Pipeline, error) {
	if s.Terrain.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", terrain.ErrInvalidSize, s.Terrain.Size)
	}

	stages := make([]stage, 0, len(s.Stages)+2)
	stages = append(stages, stage{StageWarmup, runWarmup})
	for _, name := range s.Stages {
		fn, ok := stageTable[name]
		if !ok {
			return nil, fmt.Errorf("unknown stage %q", name)
		}
		stages = append(stages, stage{name, fn})
	}
	stages = append(stages, stage{StageMesh, runMesh})

	p := &Pipeline{
		settings: s,
		stages:   stages,
		rng:      rng,
		log:      logger.Named("pipeline"),
	}
	p.Reset(rng.MapSeed())
	return p, nil
}

var stageTable = map[string]stageFunc{
	config.StageNoise:   runNoise,
	config.StageFractal: runFractal,
	config.StageErosion: runErosion,
	config.StageSmooth:  runSmooth,
}

// Reset discards the heightmap, stage state, mesh and progress, and restarts
// the map generator on seed.
func (p *Pipeline) Reset(seed uint64) {
	p.rng.Reseed(seed)
	p.hf = heightmap.New(p.settings.Terrain.Size)
	p.tracker = NewTracker(len(p.stages))
	p.fractal = nil
	p.erosion = nil
	p.passes = 0
	p.mesh = nil
	p.log.Debug("pipeline reset", zap.Uint64("seed", seed))
}

// NewSeed draws a fresh map seed and resets onto it.
func (p *Pipeline) NewSeed() uint64 {
	p.rng.Randomize()
	p.Reset(p.rng.MapSeed())
	return p.rng.MapSeed()
}

// Seed returns the map seed of the current run.
func (p *Pipeline) Seed() uint64 { return p.rng.MapSeed() }

// Step runs one tick of the current stage.
func (p *Pipeline) Step() error {
	if p.tracker.Done() {
		return ErrFinished
	}

	st := p.stages[p.tracker.Stage]
	before := p.tracker.Stage
	if err := st.run(p); err != nil {
		return fmt.Errorf("stage %s: %w", st.name, err)
	}

	if p.tracker.Stage != before {
		p.log.Info("stage complete",
			zap.String("stage", st.name),
			zap.Int("index", before),
			zap.Float32("percent", p.tracker.Percent()))
	} else {
		p.log.Debug("stage tick",
			zap.String("stage", st.name),
			zap.Float32("progress", p.tracker.StepProgress))
	}
	return nil
}

// RunToCompletion steps until every stage is done, ctx is cancelled or
// maxSteps ticks have run. It returns the number of ticks taken.
func (p *Pipeline) RunToCompletion(ctx context.Context, maxSteps int) (int, error) {
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if steps >= maxSteps {
			return steps, fmt.Errorf("%w: %d", ErrStepLimit, maxSteps)
		}
		if err := p.Step(); err != nil {
			if errors.Is(err, ErrFinished) {
				return steps, nil
			}
			return steps, err
		}
	}
}

// Done reports whether every stage has completed.
func (p *Pipeline) Done() bool { return p.tracker.Done() }

// Percent returns overall progress in [0, 100].
func (p *Pipeline) Percent() float32 { return p.tracker.Percent() }

// Tracker returns a copy of the progress state.
func (p *Pipeline) Tracker() Tracker { return p.tracker }

// StageName returns the name of the stage the next Step will run.
func (p *Pipeline) StageName() string {
	if p.tracker.Done() {
		return StageDone
	}
	return p.stages[p.tracker.Stage].name
}

// StageNames lists every stage in run order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Heightmap returns the field being generated. Callers must treat it as
// read-only; it is replaced on Reset.
func (p *Pipeline) Heightmap() *heightmap.HeightField { return p.hf }

// Mesh returns the built mesh, or nil before the mesh stage has run.
func (p *Pipeline) Mesh() *terrain.Mesh { return p.mesh }

// Settings returns the run settings.
func (p *Pipeline) Settings() Settings { return p.settings }

// report moves the current stage's progress to fraction. A finished stage
// always advances; an unfinished one never does.
func (p *Pipeline) report(fraction float32, done bool) {
	if done {
		p.tracker.AddProgress(1)
		return
	}
	target := min(fraction, 0.99)
	if delta := target - p.tracker.StepProgress; delta > 0 {
		p.tracker.AddProgress(delta)
	}
}

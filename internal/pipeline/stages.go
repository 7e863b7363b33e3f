package pipeline

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/gen"
	"github.com/Faultbox/terragen/internal/terrain"
)

func runWarmup(p *Pipeline) error {
	p.report(1, true)
	return nil
}

func runNoise(p *Pipeline) error {
	src, err := gen.NewSource(p.settings.NoiseBackend, int64(p.rng.MapSeed()))
	if err != nil {
		return err
	}
	if err := gen.NewNoise(src, p.settings.BaseFrequency).Apply(p.hf, gen.Full(p.hf)); err != nil {
		return err
	}
	p.report(1, true)
	return nil
}

func runFractal(p *Pipeline) error {
	if p.fractal == nil {
		f, err := gen.NewFractal(p.hf, p.rng, gen.Full(p.hf), p.settings.FractalRoughness)
		if err != nil {
			return err
		}
		p.fractal = f
	}

	if _, err := p.fractal.Step(p.settings.FractalBudget); err != nil {
		return err
	}
	done := p.fractal.Done()
	p.report(p.fractal.Progress(), done)
	if done {
		p.fractal = nil
	}
	return nil
}

func runErosion(p *Pipeline) error {
	if p.erosion == nil {
		e, err := gen.NewErosion(p.hf, p.rng, gen.Full(p.hf),
			p.settings.ErosionDrops, p.settings.ErosionStrength, p.settings.ErosionMaxTicks)
		if err != nil {
			return err
		}
		p.erosion = e
	}

	p.erosion.Tick()
	done := p.erosion.Done()
	if done {
		p.log.Debug("erosion settled",
			zap.Int("ticks", p.erosion.Ticks()),
			zap.Float32("max", p.hf.Max()))
	}
	p.report(p.erosion.Progress(), done)
	if done {
		p.erosion = nil
	}
	return nil
}

func runSmooth(p *Pipeline) error {
	if err := gen.Smooth(p.hf, gen.Full(p.hf)); err != nil {
		return err
	}
	p.passes++
	total := max(p.settings.SmoothPasses, 1)
	done := p.passes >= total
	p.report(float32(p.passes)/float32(total), done)
	if done {
		p.passes = 0
	}
	return nil
}

func runMesh(p *Pipeline) error {
	m, err := terrain.BuildMesh(p.hf, p.settings.Terrain)
	if err != nil {
		return err
	}
	p.mesh = m
	p.log.Info("terrain mesh built",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("degenerate", m.Degenerate))
	p.report(1, true)
	return nil
}

package states

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/heightmap"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/internal/pipeline"
)

// PreviewInterval is the minimum time between preview refreshes while a
// stage is running. Stage changes always refresh.
const PreviewInterval = 0.25

// GenRunState advances the pipeline one tick per frame.
type GenRunState struct {
	ctx *Context

	Stage        string
	previewDirty bool
	sincePreview float64
	startTime    time.Time
	ticks        int
}

// NewGenRunState creates the generation state.
func NewGenRunState(ctx *Context) *GenRunState {
	return &GenRunState{ctx: ctx}
}

// Enter is called when entering this state.
func (s *GenRunState) Enter() error {
	s.startTime = time.Now()
	s.ticks = 0
	s.Stage = s.ctx.Pipeline.StageName()
	s.previewDirty = true
	logger.Info("entering GenRunState",
		zap.Uint64("seed", s.ctx.Pipeline.Seed()),
		zap.Strings("stages", s.ctx.Pipeline.StageNames()))
	return nil
}

// Exit is called when leaving this state.
func (s *GenRunState) Exit() error { return nil }

// Update runs one pipeline tick.
func (s *GenRunState) Update(dt float64) error {
	p := s.ctx.Pipeline

	err := p.Step()
	switch {
	case errors.Is(err, pipeline.ErrFinished):
	case err != nil:
		s.fail(err)
		return nil
	default:
		s.ticks++
	}

	s.sincePreview += dt
	if stage := p.StageName(); stage != s.Stage || s.sincePreview >= PreviewInterval {
		s.Stage = stage
		s.previewDirty = true
		s.sincePreview = 0
	}

	if p.Done() {
		logger.Info("generation complete",
			zap.Int("ticks", s.ticks),
			zap.Duration("elapsed", time.Since(s.startTime)))
		s.ctx.Manager.Change(NewGenDoneState(s.ctx))
	}
	return nil
}

func (s *GenRunState) fail(err error) {
	logger.Error("generation failed", zap.String("stage", s.Stage), zap.Error(err))
	if s.ctx.OnError != nil {
		s.ctx.OnError(err)
	}
	menu := NewMenuState(s.ctx)
	menu.LastError = err
	s.ctx.Manager.Change(menu)
}

// Render is called every frame.
func (s *GenRunState) Render() error { return nil }

// HandleInput aborts the run on ActionBack.
func (s *GenRunState) HandleInput(event any) error {
	if event == ActionBack {
		logger.Info("generation aborted", zap.String("stage", s.Stage))
		s.ctx.Manager.Change(NewMenuState(s.ctx))
	}
	return nil
}

// Percent returns overall progress for the progress bar.
func (s *GenRunState) Percent() float32 {
	return s.ctx.Pipeline.Percent()
}

// TakePreview returns the heightmap when the preview should be refreshed,
// and clears the flag.
func (s *GenRunState) TakePreview() (*heightmap.HeightField, bool) {
	if !s.previewDirty {
		return nil, false
	}
	s.previewDirty = false
	return s.ctx.Pipeline.Heightmap(), true
}

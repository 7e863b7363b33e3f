package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/logger"
)

// MenuState waits for the user to pick a seed and start generating.
type MenuState struct {
	ctx *Context

	// LastError is the failure that ended the previous run, if any.
	LastError error
}

// NewMenuState creates the menu state.
func NewMenuState(ctx *Context) *MenuState {
	return &MenuState{ctx: ctx}
}

// Enter is called when entering this state.
func (s *MenuState) Enter() error {
	logger.Info("entering MenuState", zap.Uint64("seed", s.Seed()))
	return nil
}

// Exit is called when leaving this state.
func (s *MenuState) Exit() error { return nil }

// Update is called every frame.
func (s *MenuState) Update(dt float64) error { return nil }

// Render is called every frame.
func (s *MenuState) Render() error { return nil }

// HandleInput processes input events.
func (s *MenuState) HandleInput(event any) error {
	switch event {
	case ActionConfirm:
		s.Generate()
	case ActionNewSeed:
		s.NewSeed()
	case ActionBack:
		s.ctx.QuitRequested = true
	}
	return nil
}

// Seed returns the seed the next run will use.
func (s *MenuState) Seed() uint64 {
	return s.ctx.Pipeline.Seed()
}

// NewSeed draws a fresh seed.
func (s *MenuState) NewSeed() uint64 {
	seed := s.ctx.Pipeline.NewSeed()
	s.LastError = nil
	logger.Debug("new seed", zap.Uint64("seed", seed))
	return seed
}

// Generate starts a clean run on the current seed.
func (s *MenuState) Generate() {
	s.ctx.Pipeline.Reset(s.Seed())
	s.ctx.Manager.Change(NewGenRunState(s.ctx))
}

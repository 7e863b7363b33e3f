// Package states implements the viewer's state machine: menu, generation in
// progress, generation done and in-game.
package states

import (
	"errors"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/pipeline"
)

// ErrNoMesh is returned when entering the in-game state before a mesh exists.
var ErrNoMesh = errors.New("no terrain mesh")

// State represents a viewer state.
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error

	// Render is called every frame. Drawing itself is done by the game
	// loop, which inspects the exported state.
	Render() error

	// HandleInput processes an Action or Controls value.
	HandleInput(event any) error
}

// Action is a discrete user command, already decoded from keys and buttons.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionNewSeed
	ActionBack
	ActionGrabCursor
	ActionToggleWireframe
)

// Controls carries continuous in-game input for one frame.
type Controls struct {
	Forward, Right, Up float32 // Each in [-1, 1]
	LookX, LookY       float32 // Relative mouse motion in pixels
}

// Context is shared by every state.
type Context struct {
	Manager  *Manager
	Pipeline *pipeline.Pipeline
	Camera   config.CameraConfig

	// OnError, when set, is told about generation failures.
	OnError func(error)

	// QuitRequested is set when the user backs out of the menu.
	QuitRequested bool
	Wireframe     bool
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes a pending state change, then updates the current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(event any) error {
	if m.current != nil {
		return m.current.HandleInput(event)
	}
	return nil
}

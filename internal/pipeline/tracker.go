package pipeline

// Tracker is the staged progress state machine. Progress accumulates within
// a stage; reaching 1.0 moves to the next stage and drops any excess.
type Tracker struct {
	Stage        int
	StepProgress float32
	MaxStage     int
}

// NewTracker creates a tracker at stage 0 of maxStage.
func NewTracker(maxStage int) Tracker {
	return Tracker{MaxStage: maxStage}
}

// AddProgress accumulates delta into the current stage and reports whether
// the stage advanced. At most one stage is advanced per call.
func (t *Tracker) AddProgress(delta float32) bool {
	t.StepProgress += delta
	if t.StepProgress >= 1 {
		t.StepProgress = 0
		t.Stage++
		return true
	}
	return false
}

// Fraction returns overall completion in [0, 1].
func (t Tracker) Fraction() float32 {
	if t.MaxStage <= 0 {
		return 1
	}
	f := (float32(t.Stage) + t.StepProgress) / float32(t.MaxStage)
	return min(max(f, 0), 1)
}

// Percent returns overall completion in [0, 100] for the progress bar.
func (t Tracker) Percent() float32 {
	return t.Fraction() * 100
}

// Done reports whether every stage has completed.
func (t Tracker) Done() bool {
	return t.Stage >= t.MaxStage
}

// Reset returns to stage 0 with no progress.
func (t *Tracker) Reset() {
	t.Stage = 0
	t.StepProgress = 0
}

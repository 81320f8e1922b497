package animation

// Group controls several animations as one. Writes fan out to every
// member, reads delegate to the first, and Done aggregates every
// member's completion. A group is a view over its members; animations
// joined to a group can still be controlled individually.
type Group struct {
	members []PlaybackControls
}

var _ PlaybackControls = (*Group)(nil)

// NewGroup builds a group over members. nil members are skipped, so
// conditionally constructed animations can be passed directly.
func NewGroup(members ...PlaybackControls) *Group {
	g := &Group{members: make([]PlaybackControls, 0, len(members))}
	for _, m := range members {
		if m != nil {
			g.members = append(g.members, m)
		}
	}
	return g
}

// Add appends more members to the group.
func (g *Group) Add(members ...PlaybackControls) {
	for _, m := range members {
		if m != nil {
			g.members = append(g.members, m)
		}
	}
}

// Play starts or resumes every member.
func (g *Group) Play() {
	for _, m := range g.members {
		m.Play()
	}
}

// Pause freezes every member at its current time.
func (g *Group) Pause() {
	for _, m := range g.members {
		m.Pause()
	}
}

// Stop permanently halts every member.
func (g *Group) Stop() {
	for _, m := range g.members {
		m.Stop()
	}
}

// Cancel rewinds every member to its initial state.
func (g *Group) Cancel() {
	for _, m := range g.members {
		m.Cancel()
	}
}

// Complete snaps every member to its end state.
func (g *Group) Complete() {
	for _, m := range g.members {
		m.Complete()
	}
}

// Time returns the first member's playback time.
func (g *Group) Time() float64 {
	if len(g.members) == 0 {
		return 0
	}
	return g.members[0].Time()
}

// SetTime seeks every member.
func (g *Group) SetTime(ms float64) {
	for _, m := range g.members {
		m.SetTime(ms)
	}
}

// Speed returns the first member's playback rate.
func (g *Group) Speed() float64 {
	if len(g.members) == 0 {
		return 1
	}
	return g.members[0].Speed()
}

// SetSpeed changes every member's playback rate.
func (g *Group) SetSpeed(speed float64) {
	for _, m := range g.members {
		m.SetSpeed(speed)
	}
}

// Duration returns the longest member duration.
func (g *Group) Duration() float64 {
	longest := 0.0
	for _, m := range g.members {
		if d := m.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// StartTime returns the first member's anchor.
func (g *Group) StartTime() (float64, bool) {
	if len(g.members) == 0 {
		return 0, false
	}
	return g.members[0].StartTime()
}

// State returns the first member's state.
func (g *Group) State() State {
	if len(g.members) == 0 {
		return StateIdle
	}
	return g.members[0].State()
}

// Done returns a channel closed once every member's current Done
// channel has closed. An empty group's channel closes immediately.
func (g *Group) Done() <-chan struct{} {
	done := make(chan struct{})
	pending := make([]<-chan struct{}, len(g.members))
	for i, m := range g.members {
		pending[i] = m.Done()
	}
	go func() {
		for _, ch := range pending {
			<-ch
		}
		close(done)
	}()
	return done
}

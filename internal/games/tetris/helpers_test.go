package tetris

import "time"

// seqRand hands out piece types in a fixed, repeating order.
type seqRand struct {
	seq []Type
	i   int
}

func (r *seqRand) Intn(n int) int {
	t := r.seq[r.i%len(r.seq)]
	r.i++
	return int(t) - 1
}

type fakeScheduler struct {
	scheduled int
	cancelled int
	armed     bool
	interval  time.Duration
}

func (s *fakeScheduler) Schedule(interval time.Duration) {
	s.scheduled++
	s.armed = true
	s.interval = interval
}

func (s *fakeScheduler) Cancel() {
	s.cancelled++
	s.armed = false
}

type memStore struct {
	stored int
	saved  []int
}

func (m *memStore) LoadHighScore() int { return m.stored }

func (m *memStore) SaveHighScore(score int) {
	m.saved = append(m.saved, score)
	m.stored = max(m.stored, score)
}

type harness struct {
	*Engine
	sched  *fakeScheduler
	store  *memStore
	events []Event
}

func newHarness(types ...Type) *harness {
	if len(types) == 0 {
		types = []Type{I}
	}
	h := &harness{
		sched: &fakeScheduler{},
		store: &memStore{},
	}
	h.Engine = New(Options{
		Rand:       &seqRand{seq: types},
		Scheduler:  h.sched,
		HighScores: h.store,
	})
	h.Subscribe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

// fillRow fills row r with t everywhere except the listed columns.
func fillRow(g Grid, r int, t Type, holes ...int) {
	for c := range g[r] {
		g[r][c] = t
	}
	for _, c := range holes {
		g[r][c] = Empty
	}
}

func verticalI(x, y int) *Piece {
	return &Piece{Shape: TemplateFor(I).Rotate(), X: x, Y: y, Type: I}
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

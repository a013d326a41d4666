// Package tally holds the two vote counters behind the dashboard and derives
// totals and percentages from them.
package tally

// Tally is a positive/negative vote counter. The zero value is ready to use
// and starts at (0,0).
//
// A Tally is owned by a single view and is not safe for concurrent use.
type Tally struct {
	positive uint64
	negative uint64

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(Stats)
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{}
}

// RecordVote adds exactly one vote for kind and leaves the other counter
// unchanged. Unknown kinds are ignored.
func (t *Tally) RecordVote(kind Kind) {
	switch kind {
	case Positive:
		t.positive++
	case Negative:
		t.negative++
	default:
		return
	}
	t.notify()
}

// Reset zeroes both counters.
func (t *Tally) Reset() {
	t.positive = 0
	t.negative = 0
	t.notify()
}

// Stats computes the total and per-kind percentages. Both percentages are 0
// when no votes have been recorded.
func (t *Tally) Stats() Stats {
	s := Stats{
		Positive: t.positive,
		Negative: t.negative,
		Total:    t.positive + t.negative,
	}
	if s.Total == 0 {
		return s
	}
	s.PositivePercentage = float64(s.Positive) / float64(s.Total) * 100
	s.NegativePercentage = float64(s.Negative) / float64(s.Total) * 100
	return s
}

// Subscribe registers fn to be called with fresh stats after every mutation.
// Observers run synchronously in subscription order. The returned func
// removes the subscription.
func (t *Tally) Subscribe(fn func(Stats)) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.observers = append(t.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range t.observers {
			if o.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Tally) notify() {
	if len(t.observers) == 0 {
		return
	}
	s := t.Stats()
	// Observers may unsubscribe from inside their callback.
	obs := append([]observer(nil), t.observers...)
	for _, o := range obs {
		o.fn(s)
	}
}

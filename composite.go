package forage

// SwitchState is the private carry value of a switch predicate. The
// scheduler stores it between pulls without interpreting it; only the
// owning predicate gives it meaning (a step counter, say). A nil state
// means "absent", which is what a predicate sees on its first call after
// its generator becomes current.
type SwitchState any

// A SwitchFunc decides whether the scheduler keeps drawing from the
// current generator. It is called with the freshly produced vector and
// the current carry state, and returns the new carry state. Returning nil
// tells the scheduler to advance to the next generator/predicate pair.
type SwitchFunc func(v StepVector, state SwitchState) SwitchState

// SwitchEvery returns a predicate that keeps the current generator for
// runs of exactly n steps: it counts invocations and returns nil on every
// nth call, implementing fixed-length alternation between sub-walks.
func SwitchEvery(n int) SwitchFunc {
	return func(_ StepVector, state SwitchState) SwitchState {
		k := 1
		if state != nil {
			k = state.(int) + 1
		}
		if k >= n {
			return nil
		}
		return k
	}
}

// A Composite interleaves several step generators under the control of
// switch predicates, yielding a single unbounded step stream. Generators
// and predicates are paired by index and cycled round-robin: as long as
// the current predicate returns a non-nil carry the current generator
// keeps producing; when it returns nil the scheduler advances to the next
// pair (cyclically) and resets the carry to absent.
type Composite struct {
	gens   []Stream
	preds  []SwitchFunc
	labels []string

	idx   int
	carry SwitchState
}

// NewComposite builds a composite stream from parallel slices of
// generators and predicates, plus optional per-generator labels attached
// to each produced vector. labels may be nil; otherwise it must be as
// long as gens.
func NewComposite(gens []Stream, preds []SwitchFunc, labels []string) (*Composite, error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	if len(preds) != len(gens) || (labels != nil && len(labels) != len(gens)) {
		return nil, ErrMismatchedSchedule
	}
	return &Composite{gens: gens, preds: preds, labels: labels}, nil
}

// Next pulls one vector from the current generator and applies the
// current switch predicate. Generation is strictly demand driven, so
// draws from a shared random source keep their deterministic order even
// under composition. The stream ends only if the current sub-stream does.
func (c *Composite) Next() (StepVector, bool) {
	v, ok := c.gens[c.idx].Next()
	if !ok {
		return StepVector{}, false
	}
	if c.labels != nil {
		v.Label = c.labels[c.idx]
	}
	c.carry = c.preds[c.idx](v, c.carry)
	if c.carry == nil {
		c.idx = (c.idx + 1) % len(c.gens)
	}
	return v, true
}

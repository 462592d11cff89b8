package variant

import (
	"reflect"
	"slices"
	"sync"

	"fortio.org/safecast"

	"github.com/rawbytedev/variant/internal/common"
)

// Candidates is the closed, ordered list of types a Variant may hold. A type
// may appear more than once; positions, not types, identify a candidate.
type Candidates []reflect.Type

// Of builds a candidate list from ts.
func Of(ts ...reflect.Type) Candidates {
	return Candidates(ts)
}

// TypeOf returns the static type T. Use it for interface types, which
// reflect.TypeOf cannot name from a value.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Index returns the first position holding t, or -1.
func (c Candidates) Index(t reflect.Type) int {
	for i, ct := range c {
		if ct == t {
			return i
		}
	}
	return -1
}

// Positions returns every position holding t, in order.
func (c Candidates) Positions(t reflect.Type) []int {
	var ps []int
	for i, ct := range c {
		if ct == t {
			ps = append(ps, i)
		}
	}
	return ps
}

// Contains reports whether t appears anywhere in c.
func (c Candidates) Contains(t reflect.Type) bool {
	return c.Index(t) >= 0
}

// Layout is the size and alignment of a variant's storage.
type Layout = common.Layout

// checkCount validates that c can be addressed by a uint8 tag, has at
// least two entries and names a type at every position.
func checkCount(c Candidates) error {
	if len(c) < 2 {
		return failCount(len(c))
	}
	if _, err := safecast.Conv[uint8](len(c) - 1); err != nil {
		return failCount(len(c))
	}
	if slices.Contains(c, nil) {
		return fail(errMetaOpNew, nil, ErrArgumentTypeNotFound)
	}
	return nil
}

// plan is the storage layout shared by every variant over the same
// candidate list.
type plan struct {
	layout common.Layout
	// raw is set when at least one candidate is plain and needs the raw block.
	raw bool
}

func newPlan(c Candidates) *plan {
	p := &plan{layout: common.MaxLayout(c...)}
	for _, t := range c {
		if common.IsPlain(t) {
			p.raw = true
			break
		}
	}
	return p
}

type planNode struct {
	next map[reflect.Type]*planNode
	plan *plan
}

func (n *planNode) lookup(c Candidates) *plan {
	for _, t := range c {
		child, ok := n.next[t]
		if !ok {
			return nil
		}
		n = child
	}
	return n.plan
}

// planner caches plans in a trie keyed by the candidate types in order.
type planner struct {
	mu   sync.RWMutex
	root planNode
}

var plans planner

func (p *planner) get(c Candidates) *plan {
	p.mu.RLock()
	if pl := p.root.lookup(c); pl != nil {
		p.mu.RUnlock()
		return pl
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check
	n := &p.root
	for _, t := range c {
		child, ok := n.next[t]
		if !ok {
			if n.next == nil {
				n.next = make(map[reflect.Type]*planNode)
			}
			child = &planNode{}
			n.next[t] = child
		}
		n = child
	}
	if n.plan == nil {
		n.plan = newPlan(c)
	}
	return n.plan
}

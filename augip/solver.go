package augip

import (
	"github.com/augfold/nfold/diagnostics"
	"github.com/augfold/nfold/instance"
	"github.com/augfold/nfold/pathstore"
	"github.com/augfold/nfold/vecint"
)

// Solver runs the layered longest-path search over an implicit DAG of
// residual vectors. A Solver owns its path store exclusively for the
// duration of one Solve call; the store is cleared at the start of every
// call.
type Solver struct {
	x      *instance.NFold
	store  pathstore.Store
	config Config
}

// NewSolver returns a Solver for instance x under the given configuration.
// A zero Config is replaced with DefaultConfig's Sink.
func NewSolver(x *instance.NFold, cfg Config) *Solver {
	if cfg.Sink == nil {
		cfg.Sink = diagnostics.Nop
	}

	return &Solver{x: x, config: cfg}
}

// Solve finds y maximizing c.y subject to lower <= y <= upper and A.y = 0.
// ok is false when no such y exists under the given bounds (y=0 is always
// feasible when lower <= 0 <= upper componentwise, so a false result under
// such bounds means no strictly-positive-weight augmentation exists
// either).
//
// Panics if lower or upper does not have length n*t (a programmer error).
//
// Complexity: O(n*t*W*K*(r+s)) where W bounds the width of any one layer
// and K bounds upper[j]-lower[j]+1.
func (sv *Solver) Solve(lower, upper vecint.Vector) (y vecint.Vector, ok bool) {
	x := sv.x
	nt := x.N * x.T
	if len(lower) != nt || len(upper) != nt {
		panic("augip: Solve: bounds length must equal n*t")
	}

	sv.store.Clear()
	rs := x.R + x.S

	zero := vecint.NewVector(rs)
	root := sv.store.Add(0, pathstore.NoParent)

	curr := newFrontier()
	curr.insert(zero, 0, root)

	for block := 0; block < x.N; block++ {
		m := x.Block(block)
		for col := 0; col < x.T; col++ {
			j := block*x.T + col
			colVec := m.Col(col)
			last := col == x.T-1

			next := newFrontier()
			for _, src := range curr.all() {
				produced := 0
				for yv := lower[j]; yv <= upper[j]; yv++ {
					candidate := src.key.AddScaled(yv, colVec)
					if last && !candidate.Tail(x.S).IsZero() {
						continue
					}
					weight := src.weight + x.C[j]*yv

					if existing, found := next.find(candidate); found {
						if existing.weight >= weight {
							continue
						}
						sv.store.Remove(existing.node, false)
						newNode := sv.store.Add(yv, src.node)
						next.overwrite(candidate, weight, newNode)
						produced++
					} else {
						newNode := sv.store.Add(yv, src.node)
						next.insert(candidate, weight, newNode)
						produced++
					}
				}
				if produced == 0 {
					sv.store.Remove(src.node, true)
				}
			}
			curr = next
			sv.config.Sink.Tracef("augip: block=%d col=%d frontier=%d", block, col, curr.size())
		}
	}

	entry, found := curr.find(zero)
	if !found {
		return nil, false
	}

	path := sv.store.Path(entry.node)
	out := make(vecint.Vector, len(path))
	copy(out, path)
	if len(out) != nt {
		panic("augip: Solve: terminal path length does not equal n*t")
	}

	return out, true
}

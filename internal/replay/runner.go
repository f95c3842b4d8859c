package replay

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ajwerner/avl"
)

// Runner applies scripts to a fresh map, checking it as it goes.
type Runner struct {
	// VerifyEvery is the number of operations between full checks of the
	// tree. Zero means only the final state is checked.
	VerifyEvery int
	// Progress, if set, is called after each operation with the number of
	// operations completed.
	Progress func(done int)
	// Log receives debug records for each check.
	Log zerolog.Logger
}

// Report summarizes a run.
type Report struct {
	Ops       int
	Inserts   int
	Removes   int
	Gets      int
	Misses    int
	FinalLen  int
	MaxHeight int
}

// MaxHeight returns the largest number of levels an AVL tree holding n keys
// can have.
func MaxHeight(n int) int {
	if n == 0 {
		return 0
	}
	return 1 + int(math.Floor(1.4405*math.Log2(float64(n+2))-0.3277))
}

type runner struct {
	m     *avl.Map[int, string]
	model map[int]string
	rep   Report
}

// Run applies the operations of s to a fresh map.
func (rn Runner) Run(s *Script) (Report, error) {
	r := runner{
		m:     avl.New[int, string](),
		model: map[int]string{},
	}
	for i, op := range s.Ops {
		if err := r.apply(op); err != nil {
			return r.rep, errors.Wrapf(err, "%s: op %d (%s %d)", s.Name, i, op.Kind, op.Key)
		}
		if h := r.m.Height(); h > r.rep.MaxHeight {
			r.rep.MaxHeight = h
		}
		if h, bound := r.m.Height(), MaxHeight(r.m.Len()); h > bound {
			return r.rep, errors.Errorf("%s: op %d: height %d exceeds %d for %d keys",
				s.Name, i, h, bound, r.m.Len())
		}
		if every := rn.VerifyEvery; every > 0 && (i+1)%every == 0 {
			if err := r.check(); err != nil {
				return r.rep, errors.Wrapf(err, "%s: after op %d", s.Name, i)
			}
			rn.Log.Debug().
				Str("script", s.Name).
				Int("op", i).
				Int("len", r.m.Len()).
				Int("height", r.m.Height()).
				Msg("verified")
		}
		if rn.Progress != nil {
			rn.Progress(i + 1)
		}
	}
	if err := r.check(); err != nil {
		return r.rep, errors.Wrapf(err, "%s: final state", s.Name)
	}
	r.rep.FinalLen = r.m.Len()
	return r.rep, nil
}

func (r *runner) apply(op Op) error {
	r.rep.Ops++
	switch op.Kind {
	case KindInsert:
		r.rep.Inserts++
		r.m.Insert(op.Key, op.Value)
		r.model[op.Key] = op.Value
	case KindRemove:
		r.rep.Removes++
		if _, ok := r.model[op.Key]; !ok {
			r.rep.Misses++
		}
		r.m.Remove(op.Key)
		delete(r.model, op.Key)
	case KindGet:
		r.rep.Gets++
		exp, expOK := r.model[op.Key]
		got, err := r.m.At(op.Key)
		if !expOK {
			r.rep.Misses++
			var ke *avl.KeyError
			if !errors.As(err, &ke) {
				return errors.Errorf("expected key error, got %v", err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if got != exp {
			return errors.Errorf("got value %q, expected %q", got, exp)
		}
	default:
		return op.validate()
	}
	return nil
}

// check verifies the tree's invariants and compares its contents with the
// model.
func (r *runner) check() error {
	if err := r.m.Verify(); err != nil {
		return err
	}
	if r.m.Len() != len(r.model) {
		return errors.Errorf("map has %d keys, expected %d", r.m.Len(), len(r.model))
	}
	keys := make([]int, 0, len(r.model))
	for k := range r.model {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	it := r.m.Iterator()
	it.First()
	for _, k := range keys {
		if !it.Valid() {
			return errors.Errorf("iteration ended before key %d", k)
		}
		if it.Cur() != k || it.Value() != r.model[k] {
			return errors.Errorf("iteration yielded %d=%q, expected %d=%q",
				it.Cur(), it.Value(), k, r.model[k])
		}
		it.Next()
	}
	if it.Valid() {
		return errors.Errorf("unexpected key %d", it.Cur())
	}
	return nil
}

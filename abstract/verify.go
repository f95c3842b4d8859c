package abstract

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ajwerner/avl/internal/bst"
)

// Verify checks the structural invariants of the tree: keys are strictly
// ordered, parent and child links agree, every balance factor equals the
// height of the right subtree minus the height of the left and lies in
// [-1, 1], and the number of reachable nodes equals Len. All violations are
// returned together. A non-nil result indicates a defect in this package.
func (t *Map[K, V, Aux, A, AP]) Verify() error {
	v := verifier[K, V, Aux, A, AP]{t: t}
	if r := t.t.Root(); r != bst.Nil && t.t.Parent(r) != bst.Nil {
		v.errorf("root %v has parent %v", t.t.Key(r), t.t.Key(t.t.Parent(r)))
	}
	v.walk(t.t.Root(), bst.Nil, nil, nil)
	if v.count != t.t.Len() {
		v.errorf("found %d nodes, expected %d", v.count, t.t.Len())
	}
	return v.err.ErrorOrNil()
}

type verifier[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	t     *Map[K, V, Aux, A, AP]
	count int
	err   *multierror.Error
}

func (v *verifier[K, V, Aux, A, AP]) errorf(format string, args ...interface{}) {
	v.err = multierror.Append(v.err, fmt.Errorf(format, args...))
}

// walk returns the height of the subtree rooted at h, counting an empty
// subtree as -1. lo and hi, when set, are exclusive bounds on its keys.
func (v *verifier[K, V, Aux, A, AP]) walk(h, parent bst.Handle, lo, hi *K) int {
	if h == bst.Nil {
		return -1
	}
	t := &v.t.t
	v.count++
	k := t.Key(h)
	if p := t.Parent(h); p != parent {
		v.errorf("node %v: parent link does not match its position", k)
	}
	if lo != nil && t.Compare(*lo, k) >= 0 {
		v.errorf("node %v: not greater than %v", k, *lo)
	}
	if hi != nil && t.Compare(k, *hi) >= 0 {
		v.errorf("node %v: not less than %v", k, *hi)
	}
	lh := v.walk(t.Left(h), h, lo, &k)
	rh := v.walk(t.Right(h), h, &k, hi)
	b := v.t.balance(h)
	if int(b) != rh-lh {
		v.errorf("node %v: balance %d, subtree heights differ by %d", k, b, rh-lh)
	}
	if b < -1 || b > 1 {
		v.errorf("node %v: balance %d out of range", k, b)
	}
	return 1 + max(lh, rh)
}

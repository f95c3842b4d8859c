// Package replay applies scripted workloads to an avl.Map, checking the
// tree's invariants and its contents against a plain map as it goes.
package replay

import (
	"bytes"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind is the type of an operation.
type Kind string

const (
	KindInsert Kind = "insert"
	KindRemove Kind = "remove"
	KindGet    Kind = "get"
)

// Op is a single step of a Script.
type Op struct {
	Kind  Kind   `yaml:"op"`
	Key   int    `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

// Script is a named sequence of operations.
type Script struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

func (o Op) validate() error {
	switch o.Kind {
	case KindInsert, KindRemove, KindGet:
		return nil
	default:
		return errors.Errorf("unknown op %q", o.Kind)
	}
}

// Parse decodes a YAML script. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding script")
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return nil, errors.Wrapf(err, "op %d", i)
		}
	}
	return &s, nil
}

// Load reads a YAML script from path. A script without a name is named
// after its file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Save writes s to path as YAML.
func Save(path string, s *Script) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encoding script")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "writing script")
}

// Random generates a script of n operations over keys in [0, n). Roughly
// removeRatio of the operations are removals and a tenth are lookups; the
// rest are insertions. The same seed always yields the same script.
func Random(n int, seed int64, removeRatio float64) *Script {
	rng := rand.New(rand.NewSource(seed))
	s := &Script{
		Name: "random",
		Ops:  make([]Op, 0, n),
	}
	keySpace := n
	if keySpace < 1 {
		keySpace = 1
	}
	for i := 0; i < n; i++ {
		op := Op{Key: rng.Intn(keySpace)}
		switch p := rng.Float64(); {
		case p < removeRatio:
			op.Kind = KindRemove
		case p < removeRatio+0.1:
			op.Kind = KindGet
		default:
			op.Kind = KindInsert
			op.Value = randomValue(rng)
		}
		s.Ops = append(s.Ops, op)
	}
	return s
}

func randomValue(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 1+rng.Intn(8))
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

package sort

import (
	"fmt"
	"strings"

	"algoexam/src/record"

	"github.com/pkg/errors"
)

var ErrInvalidAlgorithm = errors.New("invalid algorithm")

// Func sorts a copy of records by field.
type Func func(records []record.Record, field record.Field) []record.Record

// Algorithm is the closed set of benchmarked sorts.
type Algorithm int

const (
	AlgoBubble Algorithm = iota
	AlgoInsertion
	AlgoMerge
)

var algorithms = [...]struct {
	letter     string
	name       string
	title      string
	complexity string
	fn         Func
}{
	AlgoBubble:    {"A", "bubble", "Bubble Sort", "O(n^2)", Bubble},
	AlgoInsertion: {"B", "insertion", "Insertion Sort", "O(n^2)", Insertion},
	AlgoMerge:     {"C", "merge", "Merge Sort", "O(n log n)", Merge},
}

// Algorithms lists every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoInsertion, AlgoMerge}
}

func (a Algorithm) Valid() bool {
	return a >= AlgoBubble && a <= AlgoMerge
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithms[a].title
}

// Label is the menu line, e.g. "A. Bubble Sort (O(n^2))".
func (a Algorithm) Label() string {
	if !a.Valid() {
		return a.String()
	}
	al := algorithms[a]
	return fmt.Sprintf("%s. %s (%s)", al.letter, al.title, al.complexity)
}

// Quadratic reports whether the algorithm is O(n^2).
func (a Algorithm) Quadratic() bool {
	return a == AlgoBubble || a == AlgoInsertion
}

// Func returns the sort function, or nil for an invalid algorithm.
func (a Algorithm) Func() Func {
	if !a.Valid() {
		return nil
	}
	return algorithms[a].fn
}

// ParseAlgorithm accepts the menu letter (A/B/C) or the algorithm name,
// case-insensitively.
func ParseAlgorithm(tag string) (Algorithm, error) {
	tag = strings.TrimSpace(tag)
	for i, al := range algorithms {
		if strings.EqualFold(tag, al.letter) || strings.EqualFold(tag, al.name) {
			return Algorithm(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidAlgorithm, "%q", tag)
}

package bench

import (
	"testing"
	"time"

	"algoexam/src/record"
	"algoexam/src/sort"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []record.Record{
	{ID: 3, FirstName: "Bea", LastName: "Cruz"},
	{ID: 1, FirstName: "Ana", LastName: "Diaz"},
	{ID: 2, FirstName: "Cid", LastName: "Eng"},
}

type recordingConfirmer struct {
	answer bool
	err    error
	asked  []string
}

func (c *recordingConfirmer) Confirm(message string, defaultValue bool) (bool, error) {
	c.asked = append(c.asked, message)
	return c.answer, c.err
}

func bigDataset(n int) []record.Record {
	rs := make([]record.Record, n)
	for i := range rs {
		rs[i] = record.Record{ID: int64(n - i), FirstName: "F", LastName: "L"}
	}
	return rs
}

func TestRunSortsSample(t *testing.T) {
	h := &Harness{}
	for _, algo := range []string{"A", "B", "C"} {
		res, err := h.Run(sample, Request{N: 3, Field: "ID", Algorithm: algo})
		require.NoError(t, err, algo)
		assert.Equal(t, 3, res.N)
		assert.Equal(t, record.FieldID, res.Field)
		assert.Equal(t, []int64{1, 2, 3}, []int64{res.Records[0].ID, res.Records[1].ID, res.Records[2].ID})
		assert.GreaterOrEqual(t, res.Seconds(), 0.0)
	}
}

func TestRunClampsN(t *testing.T) {
	h := &Harness{}
	res, err := h.Run(sample, Request{N: 50, Field: "firstName", Algorithm: "merge"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.N)
	assert.Len(t, res.Records, 3)
	assert.Equal(t, "Ana", res.Records[0].FirstName)
}

func TestRunTakesPrefix(t *testing.T) {
	h := &Harness{}
	res, err := h.Run(sample, Request{N: 2, Field: "id", Algorithm: "bubble"})
	require.NoError(t, err)
	assert.Equal(t, []record.Record{sample[1], sample[0]}, res.Records)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	c := &recordingConfirmer{answer: true}
	h := &Harness{Confirm: c}
	var ran bool
	h.Progress = func(string) func() { ran = true; return func() {} }

	_, err := h.Run(sample, Request{N: 3, Field: "email", Algorithm: "A"})
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.True(t, errors.Is(err, record.ErrInvalidField))

	_, err = h.Run(sample, Request{N: 3, Field: "id", Algorithm: "Z"})
	assert.True(t, errors.Is(err, ErrInvalidAlgorithm))
	assert.True(t, errors.Is(err, sort.ErrInvalidAlgorithm))

	_, err = h.Run(sample, Request{N: 0, Field: "id", Algorithm: "A"})
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = h.RunWith(sample, 3, record.Field(9), sort.AlgoMerge)
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = h.RunWith(sample, 3, record.FieldID, sort.Algorithm(9))
	assert.True(t, errors.Is(err, ErrInvalidAlgorithm))

	assert.False(t, ran)
	assert.Empty(t, c.asked)
}

func TestSafetyGateDeclined(t *testing.T) {
	data := bigDataset(DefaultLargeN)
	c := &recordingConfirmer{answer: false}
	var ran bool
	h := &Harness{Confirm: c, Progress: func(string) func() { ran = true; return func() {} }}

	res, err := h.Run(data, Request{N: 100000, Field: "id", Algorithm: "A"})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Len(t, c.asked, 1)
	assert.Contains(t, c.asked[0], "Bubble Sort")
	assert.False(t, ran)
	assert.Equal(t, int64(DefaultLargeN), data[0].ID)
}

func TestSafetyGateNoConfirmer(t *testing.T) {
	h := &Harness{LargeN: 10}
	_, err := h.Run(bigDataset(20), Request{N: 10, Field: "id", Algorithm: "insertion"})
	assert.True(t, errors.Is(err, ErrCancelled))
}

func TestSafetyGateAccepted(t *testing.T) {
	c := &recordingConfirmer{answer: true}
	h := &Harness{LargeN: 10, Confirm: c}
	res, err := h.Run(bigDataset(20), Request{N: 15, Field: "id", Algorithm: "B"})
	require.NoError(t, err)
	assert.Len(t, c.asked, 1)
	assert.Equal(t, int64(6), res.Records[0].ID)
}

func TestConfirmTimeNotMeasured(t *testing.T) {
	const wait = 50 * time.Millisecond
	h := &Harness{LargeN: 1, Confirm: ConfirmFunc(func(string, bool) (bool, error) {
		time.Sleep(wait)
		return true, nil
	})}
	res, err := h.Run(sample, Request{N: 3, Field: "id", Algorithm: "A"})
	require.NoError(t, err)
	assert.True(t, res.Elapsed < wait, "elapsed %s includes the confirmation", res.Elapsed)
}

func TestSafetyGateSkipsMergeAndSmallN(t *testing.T) {
	c := &recordingConfirmer{}
	h := &Harness{LargeN: 10, Confirm: c}

	_, err := h.Run(bigDataset(20), Request{N: 20, Field: "id", Algorithm: "C"})
	require.NoError(t, err)
	_, err = h.Run(bigDataset(20), Request{N: 9, Field: "id", Algorithm: "A"})
	require.NoError(t, err)
	assert.Empty(t, c.asked)
}

func TestSafetyGateUsesClampedN(t *testing.T) {
	c := &recordingConfirmer{}
	h := &Harness{LargeN: 10, Confirm: c}
	_, err := h.Run(bigDataset(5), Request{N: 1000, Field: "id", Algorithm: "A"})
	require.NoError(t, err)
	assert.Empty(t, c.asked)
}

func TestConfirmError(t *testing.T) {
	boom := errors.New("tty closed")
	h := &Harness{LargeN: 1, Confirm: ConfirmFunc(func(string, bool) (bool, error) { return false, boom })}
	_, err := h.Run(sample, Request{N: 3, Field: "id", Algorithm: "A"})
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrCancelled))
}

func TestProgressBracketsSort(t *testing.T) {
	var events []string
	h := &Harness{Progress: func(label string) func() {
		events = append(events, "start:"+label)
		return func() { events = append(events, "stop") }
	}}
	_, err := h.Run(sample, Request{N: 3, Field: "lastName", Algorithm: "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"start:Sorting 3 records by lastName", "stop"}, events)
}

func TestRunDoesNotMutateDataset(t *testing.T) {
	data := append([]record.Record(nil), sample...)
	h := &Harness{}
	res, err := h.Run(data, Request{N: 3, Field: "id", Algorithm: "A"})
	require.NoError(t, err)
	assert.Equal(t, sample, data)
	res.Records[0].FirstName = "x"
	assert.Equal(t, sample, data)
}

func TestEmptyDataset(t *testing.T) {
	h := &Harness{}
	res, err := h.Run(nil, Request{N: 5, Field: "id", Algorithm: "A"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.N)
	assert.Empty(t, res.Preview(PreviewSize))
}

func TestPreview(t *testing.T) {
	res := &Result{Records: bigDataset(8)}
	assert.Len(t, res.Preview(PreviewSize), 5)
	assert.Len(t, res.Preview(20), 8)
	assert.Len(t, res.Preview(-1), 0)
}

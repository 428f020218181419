package sort

import (
	"algoexam/src/record"
)

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// byField sorts a private copy of records by one field.
type byField struct {
	rs    []record.Record
	field record.Field
}

func (p byField) Len() int { return len(p.rs) }

func (p byField) Less(i, j int) bool { return record.Less(p.rs[i], p.rs[j], p.field) }

func (p byField) Swap(i, j int) { p.rs[i], p.rs[j] = p.rs[j], p.rs[i] }

// BubbleSort runs len-1 full passes over data, swapping adjacent elements
// only when the right one is strictly less. There is no early exit.
func BubbleSort(data Sorter) {
	for pass := 1; pass < data.Len(); pass++ {
		for i := 0; i < data.Len()-pass; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
			}
		}
	}
}

func clone(records []record.Record) []record.Record {
	out := make([]record.Record, len(records))
	copy(out, records)
	return out
}

// Bubble returns a copy of records sorted by field using bubble sort.
func Bubble(records []record.Record, field record.Field) []record.Record {
	out := clone(records)
	BubbleSort(byField{rs: out, field: field})
	return out
}

// Insertion returns a copy of records sorted by field using insertion sort.
func Insertion(records []record.Record, field record.Field) []record.Record {
	out := clone(records)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && record.Less(key, out[j], field) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}

// Merge returns a copy of records sorted by field using a bottom-up merge
// sort. Runs of width 1, 2, 4... are merged pairwise between two buffers.
func Merge(records []record.Record, field record.Field) []record.Record {
	src := clone(records)
	n := len(src)
	if n < 2 {
		return src
	}
	dst := make([]record.Record, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], field)
		}
		src, dst = dst, src
	}
	return src
}

// merge writes left and right into out. On ties the left head wins.
func merge(out, left, right []record.Record, field record.Field) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if record.Less(right[j], left[i], field) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}

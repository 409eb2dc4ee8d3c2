package slice

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

// DefBatchSize represents default batch size for Batch
const DefBatchSize = 5

// Prepend returns new slice with <elm> added to the beginning of <inp>
func Prepend[T any](inp []T, elm T) []T {
	return append([]T{elm}, inp...)
}

// Filled returns new slice of <times> amount of <elm>
func Filled[T any](elm T, times int) []T {
	out := []T{}
	for i := 0; i < times; i++ {
		out = append(out, elm)
	}
	return out
}

// Flatten returns new slice with elements of every slice in <nested>, in order
func Flatten[T any](nested [][]T) []T {
	return lo.Flatten(nested)
}

// RemoveDuplicates returns new slice of <inp> without repeated elements, keeping the first occurence of each and
// preserving order.
func RemoveDuplicates[T comparable](inp []T) []T {
	return lo.Uniq(inp)
}

// RemoveDuplicatesBy returns new slice of <inp> without elements whose <key> was already seen, keeping the first
// occurence of each and preserving order.
func RemoveDuplicatesBy[T any, K comparable](inp []T, key func(elm T) K) []T {
	return lo.UniqBy(inp, key)
}

// RemoveDuplicatesFunc returns new slice of <inp> without deeply equal elements, keeping the first occurence of each
// and preserving order.
//
// Works with non-comparable types such as slices or maps, in quadratic time.
func RemoveDuplicatesFunc[T any](inp []T) []T {
	out := make([]T, 0, len(inp))
	for _, elm := range inp {
		if !lo.ContainsBy(out, func(seen T) bool { return cmp.Equal(seen, elm) }) {
			out = append(out, elm)
		}
	}
	return out
}

// BadBatchSizeError represents error thrown if batch size is less than 1
type BadBatchSizeError struct {
	Size int
}

// Error is used to satisfy golang error interface
func (e BadBatchSizeError) Error() string {
	return fmt.Sprintf("Batch size should be greater than 0, got %v", e.Size)
}

// Batch returns <inp> divided into consecutive batches of <size> elements. The last batch holds the remainder.
//
// Returns BadBatchSizeError if <size> is less than 1.
func Batch[T any](inp []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, errors.Wrap(BadBatchSizeError{Size: size}, "Batch")
	}
	return lo.Chunk(inp, size), nil
}

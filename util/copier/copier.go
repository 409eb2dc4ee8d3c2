package copier

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
)

// Deep returns deep copy of <inp> and error if copier fails
func Deep[T any](inp T) (out T, err error) {
	err = copier.CopyWithOption(&out, &inp, copier.Option{DeepCopy: true})
	return out, errors.Wrap(err, "Deep copy")
}

// TDeep returns deep copy of <inp>, failing the test <t> if copier fails.
//
// Used to keep the original value of function arguments and check it was not modified afterwards.
func TDeep[T any](t *testing.T, inp T) T {
	t.Helper()
	out, err := Deep(inp)
	assert.NoError(t, err, "should copy the source")
	return out
}

// PDeep returns deep copy of <inp>, panicking if copier fails
func PDeep[T any](inp T) T {
	out, err := Deep(inp)
	if err != nil {
		panic(err)
	}
	return out
}

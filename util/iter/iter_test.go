package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimes(t *testing.T) {
	count := 0
	Times(10, func(iteration int) bool {
		count++
		return true
	})
	assert.Equal(t, 10, count, "should iterate 10 times")

	count = 0
	Times(10, func(iteration int) bool {
		count++
		return iteration != 5
	})
	assert.Equal(t, 5, count, "should iterate 5 times")

	count = 0
	Times(0, func(iteration int) bool {
		count++
		return true
	})
	assert.Equal(t, 0, count, "should not iterate")
}

func TestStepsDown(t *testing.T) {
	assert.Exactly(t, []int{8, 6, 4, 2, 0}, StepsDown(10, 2), "should step down evenly")
	assert.Exactly(t, []int{3, 1, 0}, StepsDown(5, 2), "should not go below 0")
	assert.Exactly(t, []int{0}, StepsDown(2, 5), "should finish in one step")
	assert.Exactly(t, []int{0}, StepsDown(1, 1), "should finish in one step")
	assert.Nil(t, StepsDown(0, 2), "should return nil for zero total")
	assert.Nil(t, StepsDown(10, 0), "should return nil for zero step")
}

package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"ds_helper/util/iter"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// BadStepError represents error thrown if countdown step is less than 1
type BadStepError struct {
	Step int
}

// Error is used to satisfy golang error interface
func (e BadStepError) Error() string {
	return fmt.Sprintf("Countdown step should be greater than 0, got %v", e.Step)
}

// remainColor is used to print remaining amount
var remainColor = color.New(color.FgYellow)

// Sleep waits for <duration> <unit>s, printing remaining amount of units to <out> after every <step> units, each
// followed by a space.
//
// The last step is shortened if <duration> is not a multiple of <step>.
//
// Returns context error if <ctx> is done before countdown ends.
func Sleep(ctx context.Context, out io.Writer, duration, step int, unit time.Duration) (err error) {
	if step < 1 {
		return errors.Wrap(BadStepError{Step: step}, "Countdown")
	}
	remains := iter.StepsDown(duration, step)
	elapsed := 0
	iter.Times(len(remains), func(iteration int) bool {
		remain := remains[iteration-1]
		wait := (duration - remain) - elapsed
		elapsed += wait

		timer := time.NewTimer(time.Duration(wait) * unit)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "Countdown")
			return false
		case <-timer.C:
		}

		if _, err = remainColor.Fprint(out, remain, " "); err != nil {
			err = errors.Wrap(err, "Print remaining time")
			return false
		}
		return true
	})
	return
}

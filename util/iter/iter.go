package iter

// Times runs <iteratee> <count> amount of times.
//
// If <iteratee> returns false, iteration stops.
//
// <iteration> argument starts from 1 until it equals <count>.
func Times(count int, iteratee func(iteration int) bool) {
	for iteration := 1; iteration <= count; iteration++ {
		if !iteratee(iteration) {
			break
		}
	}
}

// StepsDown returns what remains of <total> after every <step> subtracted from it, never going below 0.
//
// Returns nil if <total> or <step> is less than 1.
func StepsDown(total, step int) (out []int) {
	if total < 1 || step < 1 {
		return nil
	}
	for remain := total - step; ; remain -= step {
		if remain <= 0 {
			return append(out, 0)
		}
		out = append(out, remain)
	}
}

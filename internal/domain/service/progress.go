package service

// PlanningSectionCount is the number of wizard sections counted by progress.
const PlanningSectionCount = 6

// CalculateProgress converts a number of completed planning sections into a
// whole percentage, rounding down: 1 section is 16, all six are 100.
func CalculateProgress(completed int) int {
	if completed <= 0 {
		return 0
	}
	if completed >= PlanningSectionCount {
		return 100
	}
	return completed * 100 / PlanningSectionCount
}

// Package tui implements the optional bubbletea dashboard. It shows both
// counting runs live, the per-chunk distribution of the parallel run, and
// heap and goroutine activity sampled while the runs execute.
package tui

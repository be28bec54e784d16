package tensor

// gradEnabled is the process-wide gradient-tracking switch read by every node
// construction. The engine is single-threaded by design; callers exposing it
// to multiple goroutines must confine each graph to one goroutine.
var gradEnabled = true

// GradEnabled reports whether new nodes currently record differentiation
// metadata.
func GradEnabled() bool {
	return gradEnabled
}

// NoGrad disables gradient tracking and returns a restore function that
// brings back the previous state. Each call captures its own prior value, so
// scopes nest with stack discipline:
//
//	restore := tensor.NoGrad()
//	defer restore()
func NoGrad() (restore func()) {
	prev := gradEnabled
	gradEnabled = false
	return func() { gradEnabled = prev }
}

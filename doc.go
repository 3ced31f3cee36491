// Package hyperbitbit implements HyperBitBit, the cardinality estimation
// algorithm introduced by Robert Sedgewick in
// https://www.cs.princeton.edu/~rs/talks/AC11-Cardinality.pdf. Given a stream
// of elements it estimates the number of distinct elements seen, using 136
// bits of state (two 64-bit sketches and a scale exponent) no matter how long
// the stream is.
//
// For large inputs (thousands of distinct elements and up) the estimate is
// typically within 10% of the true count. Below that the estimator bottoms
// out at its floor value and is not meaningful; a fresh sketch reports 1351.
// If you need mergeable sketches or tighter accuracy, use a HyperLogLog
// variant instead; HyperBitBit trades accuracy for being extremely small
// and cheap.
//
// A Sketch is not safe for concurrent use. Guard it with a mutex, or give
// each goroutine its own sketch.
package hyperbitbit

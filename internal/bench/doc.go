// Package bench times addition strategies on buffers at controlled
// alignments.
//
// For every alignment condition the Runner copies fresh source data into the
// condition's input buffers, runs each strategy family once to warm caches
// and branch predictors, runs it again under the clock, and reports the
// elapsed time together with the sum of the result elements. Equal sums
// across families are the benchmark's correctness signal; WithVerify adds an
// element-wise check against a float64 reference.
package bench

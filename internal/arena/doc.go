// Package arena carves float32 buffers at controlled byte offsets from an
// aligned base.
//
// An Arena owns one over-allocated block. Construction rounds the block's
// start address up to the next alignment boundary and checks that the slack
// can absorb that rounding plus the largest offset a caller may ask for, so
// every view stays inside the block:
//
//	raw:  |--rounding--|--offset--|------ n float32 ------|--unused--|
//	      ^raw start   ^aligned base                                 ^raw end
//
// A Layout groups the three arenas of one benchmark run (inputs A and B and
// the result) and hands out Triples that share one offset.
package arena

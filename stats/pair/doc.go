// Package pair computes statistics over paired sequences.
//
// The central aggregate is the mean absolute difference (MAD, often
// written MAE) between two equal-length sequences compared position by
// position. [StreamingMAD] accumulates the same aggregate incrementally
// across multiple chunks.
package pair

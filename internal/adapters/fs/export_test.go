package fs

// Accumulate exposes the overflow-checked accumulator to the external test package.
var Accumulate = accumulate

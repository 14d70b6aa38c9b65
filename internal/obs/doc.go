// Package obs defines the observation set abstraction shared by both file
// formats, the carry-forward sampler that fills it from a schedule, and
// the training/test partitioner.
//
// A Set maps observation keys (vector:well) to date-ordered entries. Both
// codecs and the equivalence checks operate on this one abstraction, which
// is what makes cross-format equivalence testable generically.
package obs

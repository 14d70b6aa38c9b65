// Package codec serializes observation sets to the two interchangeable
// observation file formats and parses them back.
//
// Both formats implement the same Codec interface over obs.Set, so the
// information-equivalence contract between them is stated (and tested)
// once against the interface: for any set S and codecs A and B,
// A.Decode(A.Encode(S)) and B.Decode(B.Encode(S)) must compare equal
// under obs.Diff.
//
// Numbers are written by both formats through the same shortest
// round-trip decimal formatter, so a value parsed from one format is
// bit-identical to the same value parsed from the other.
package codec

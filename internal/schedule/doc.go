// Package schedule holds the time-ordered record of well production and
// injection history events that observation export runs against.
//
// A Schedule is append-only: the history loader (or the SQLite store)
// builds it once, and everything downstream treats it as read-only. The
// package also provides the per-well governing-event lookup that implements
// carry-forward semantics: a well's last recorded state persists until a
// newer event supersedes it.
package schedule

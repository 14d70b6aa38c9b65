// Package store persists event schedules in SQLite so a schedule built
// once from raw production data can be re-exported under different
// resampling policies without re-parsing the source tables.
package store

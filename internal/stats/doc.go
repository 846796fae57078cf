// Package stats answers the read-only queries of a weapon report: the
// category distribution of the Type column and top-N rankings over a
// numeric column.
//
// Two engines implement the same Engine interface:
//   - MemoryEngine sorts in Go with stable sorts
//   - SQLiteEngine loads the weapons into an in-memory SQLite table
//     (modernc.org/sqlite) and answers with SQL
//
// Both engines break ties by original row order, so they return identical
// results for the same input. Nothing is written to disk.
package stats

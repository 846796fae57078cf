// Package dataset loads the weapon table and turns it into typed weapons.
//
// Loading happens in three stages:
//   - Load parses the delimited file and tracks how many times each header
//     text has been seen. The first occurrence keeps the header text, later
//     occurrences get a ".1", ".2", ... marker.
//   - Normalize renames columns from a fixed (header, occurrence) alias list.
//     The weapon table repeats Phy, Mag, Fir, Lit and Hol: the first block is
//     attack damage and the second block is guard damage.
//   - Coerce converts the renamed table into model.Weapon values using
//     ParseNumber, which maps placeholder cells such as "-" to zero.
//
// Normalization matches on (header, occurrence), never on the ".1" marker.
// The alias list is the only place that knows which block is which.
package dataset

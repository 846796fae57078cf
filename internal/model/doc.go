// Package model defines the core data structures used throughout weaponstats.
//
// This package contains the following main types:
//   - Weapon: One typed weapon row after column normalization and coercion
//   - Damage: The five damage values shared by the attack and guard blocks
//   - Report: The result of an analysis run, consumed by the report writers
//
// The dataset, stats, pipeline and report packages all share these types.
// Every type carries json tags for the JSON report and the export command.
package model

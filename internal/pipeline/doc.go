// Package pipeline provides a framework for executing analysis steps in sequence.
//
// A weapon report is produced by passing a State through ordered stages:
// loading the file, normalizing duplicate columns, coercing typed weapons,
// indexing them into a stats engine, and running the report queries. Each
// stage is implemented as a Step that receives the State and can modify it.
//
// LoadPipeline builds the loading stages shared by the analyze, top and
// export commands; DefaultPipeline adds the report queries. Execute checks
// the context before every step.
package pipeline

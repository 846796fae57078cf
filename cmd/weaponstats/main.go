// Package main provides the entry point for the weaponstats CLI.
//
// weaponstats reads the Elden Ring weapon spreadsheet export and prints
// descriptive summaries: weapon counts by type, the strongest weapons by
// physical attack and the heaviest weapons.
//
// Usage:
//
//	weaponstats analyze [file]
//	weaponstats top [file] --by Mag_Attack
//
// See --help for all available options.
package main

// main is the entry point for weaponstats.
func main() {
	Execute()
}

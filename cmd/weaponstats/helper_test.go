package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// weaponsCSV is a small table with the duplicated damage headers of the
// real export. Counts by type: Dagger 2, Colossal Sword 2, then one each.
const weaponsCSV = `Name,Type,Phy,Mag,Fir,Lit,Hol,Cri,Phy,Mag,Fir,Lit,Hol,Str,Dex,Int,Fai,Arc,Wgt,Upgrade
Dagger,Dagger,75,0,0,0,0,130,35,20,20,20,20,E,D,-,-,-,1.5,Smithing Stones
Claymore,Greatsword,138,0,0,0,0,100,60,30,30,30,30,C,D,-,-,-,9,Smithing Stones
Moonveil,Katana,73,87,0,0,0,100,35,47,20,20,20,E,D,C,-,-,6.5,Somber Smithing Stones
Ruins Greatsword,Colossal Sword,124,0,0,0,0,100,80,40,40,40,40,B,-,D,-,-,23,Somber Smithing Stones
Reduvia,Dagger,79,0,0,0,0,110,36,20,20,20,20,E,D,-,-,D,2.5,Somber Smithing Stones
Carian Sorcery Sword,Straight Sword,-,-,0,0,0,100,-,-,0,0,0,D,C,C,-,-,3.5,Somber Smithing Stones
Zweihander,Colossal Sword,141,0,0,0,0,100,64,24,24,24,24,D,E,-,-,-,15.5,Smithing Stones
`

// writeFile writes content to name inside a fresh temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeWeapons writes the sample weapon table and returns its path.
func writeWeapons(t *testing.T) string {
	t.Helper()
	return writeFile(t, "elden_ring_weapon.csv", weaponsCSV)
}

// runCLI executes the root command with args and returns stdout, stderr
// and the returned error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// runCLIWithInput is runCLI with stdin set to input.
func runCLIWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

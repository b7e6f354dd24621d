//go:build mage

package main

import (
	"os"
	"os/exec"
)

// run invokes the CLI through go run so targets work without a prior Build.
func run(stage string, args ...string) error {
	cmdArgs := append([]string{"run", cmdPkg, stage}, args...)
	cmd := exec.Command("go", cmdArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Discover finds missing Google Scholar IDs for the dataset.
func Discover() error {
	return run("discover")
}

// Update refreshes citation metrics for records that have a scholar ID.
func Update() error {
	return run("update", "--yes")
}

// UpdateStats prints dataset statistics without fetching anything.
func UpdateStats() error {
	return run("update", "--stats-only")
}

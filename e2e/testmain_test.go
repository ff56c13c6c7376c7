//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestMain builds the app from the module root once for the whole suite
func TestMain(m *testing.M) {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "tftlookup_e2e")

	build := exec.Command("go", "build", "-o", binPath, ".")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build tftlookup: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = os.Remove(binPath)
	os.Exit(code)
}

package main

import (
	"os"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeCustomFixture(t, dir, "5d696d521de238c3.customDestinations-ms")

	// Quiet the summary output.
	old := os.Stdout
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = null
	defer func() {
		os.Stdout = old
		null.Close()
	}()

	if err := runInfo(in, false); err != nil {
		t.Fatal(err)
	}
	if err := runInfo(in, true); err != nil {
		t.Fatal(err)
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	if err := runInfo("/nonexistent/file", false); err == nil {
		t.Fatal("want error for missing file")
	}
}

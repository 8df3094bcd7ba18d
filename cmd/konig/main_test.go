package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_BuildPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-n", "5", "-shape", "path", "-seed", "1"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v, stderr=%s", err, stderr.String())
	}

	lines := strings.Split(stdout.String(), "\n")
	if lines[0] != "5 4" {
		t.Fatalf("got header %q, want %q", lines[0], "5 4")
	}
}

func TestRun_UnknownShape(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-n", "5", "-shape", "bogus"}, &stdout, &stderr); err == nil {
		t.Fatal("expected an error for an unknown -shape")
	}
}

func TestRun_TooFewNodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-n", "1", "-shape", "wheel"}, &stdout, &stderr); err == nil {
		t.Fatal("expected an error for a wheel on too few nodes")
	}
}

func TestRun_WeightedOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-n", "4", "-shape", "clique", "-weighted"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(stdout.String(), "\n")
	if len(strings.Fields(lines[1])) != 3 {
		t.Fatalf("weighted edge line %q lacks a weight column", lines[1])
	}
}

package cmd

import (
	"os"
	"testing"
)

func TestRunLexReportsIllegalTokens(t *testing.T) {
	lexEval = "float x;"
	lexOnlyIllegal = false
	if err := runLex(nil, []string{}); err != nil {
		t.Fatalf("unexpected error lexing valid source: %v", err)
	}

	lexEval = "float x; @ "
	if err := runLex(nil, []string{}); err == nil {
		t.Fatalf("expected an error for source containing an illegal character")
	}
}

func TestReadSourcePrefersEvalOverArgs(t *testing.T) {
	input, filename, err := readSource("float x;", []string{"ignored.src"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "float x;" || filename != "<eval>" {
		t.Fatalf("expected eval source to win, got input=%q filename=%q", input, filename)
	}
}

func TestReadSourceReadsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/progs.src"
	if err := os.WriteFile(path, []byte("float x;"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	input, filename, err := readSource("", []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input != "float x;" || filename != path {
		t.Fatalf("expected file contents and name, got input=%q filename=%q", input, filename)
	}
}

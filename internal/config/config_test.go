package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseSearchDefaults(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"ample", "search", "gutenberg"})
	if exitResult != nil {
		t.Fatalf("Parse() exit = %+v", exitResult)
	}

	if cfg.Command != CommandSearch {
		t.Errorf("Command = %q, want search", cfg.Command)
	}
	if cfg.Arg != "gutenberg" {
		t.Errorf("Arg = %q, want gutenberg", cfg.Arg)
	}
	if cfg.Database != "ct" {
		t.Errorf("Database = %q, want ct", cfg.Database)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("RateLimit = %v, want 0", cfg.RateLimit)
	}
	if cfg.Target() != "ct" {
		t.Errorf("Target() = %q, want ct", cfg.Target())
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{
		"ample",
		"-db", "istc",
		"-format", "rdf/ttl",
		"-timeout", "5s",
		"-rate-limit", "2.5",
		"export", "ib00526000",
	})
	if exitResult != nil {
		t.Fatalf("Parse() exit = %+v", exitResult)
	}

	if cfg.Database != "istc" {
		t.Errorf("Database = %q, want istc", cfg.Database)
	}
	if cfg.Format != "rdf/ttl" {
		t.Errorf("Format = %q, want rdf/ttl", cfg.Format)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v, want 2.5", cfg.RateLimit)
	}
	if cfg.Command != CommandExport || cfg.Arg != "ib00526000" {
		t.Errorf("Command/Arg = %q/%q", cfg.Command, cfg.Arg)
	}
}

func TestParseHostOverridesDatabase(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"ample", "-host", "localhost:8080/ct", "record", "cnp1"})
	if exitResult != nil {
		t.Fatalf("Parse() exit = %+v", exitResult)
	}
	if cfg.Target() != "localhost:8080/ct" {
		t.Fatalf("Target() = %q, want the literal host", cfg.Target())
	}
}

func TestParseHostsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.yaml")
	if err := os.WriteFile(path, []byte("sbn: data.cerl.org/sbn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, exitResult := Parse([]string{"ample", "-hosts-file", path, "-db", "sbn", "hits", "q"})
	if exitResult != nil {
		t.Fatalf("Parse() exit = %+v", exitResult)
	}
	if cfg.HostsFile != path {
		t.Fatalf("HostsFile = %q, want %q", cfg.HostsFile, path)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no_arguments", args: nil},
		{name: "no_command", args: []string{"ample"}},
		{name: "unknown_command", args: []string{"ample", "frobnicate", "x"}},
		{name: "missing_argument", args: []string{"ample", "search"}},
		{name: "too_many_arguments", args: []string{"ample", "search", "a", "b"}},
		{name: "missing_hosts_file", args: []string{"ample", "-hosts-file", "/no/such/file.yaml", "hits", "q"}},
		{name: "bad_flag", args: []string{"ample", "-timeout", "soon", "hits", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, exitResult := Parse(tt.args)
			if cfg != nil {
				t.Fatalf("Parse() config = %+v, want nil", cfg)
			}
			if exitResult == nil {
				t.Fatal("Parse() expected an exit result")
			}
			if exitResult.ExitCode != 1 {
				t.Fatalf("ExitCode = %d, want 1", exitResult.ExitCode)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	cfg, exitResult := Parse([]string{"ample", "-h"})
	if cfg != nil {
		t.Fatalf("Parse() config = %+v, want nil", cfg)
	}
	if exitResult == nil || exitResult.ExitCode != 0 {
		t.Fatalf("Parse() exit = %+v, want success with usage", exitResult)
	}
}

// ABOUTME: Tests for root CLI command and global flags
// ABOUTME: Verifies command structure, subcommands, and flag handling
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "bookchat" {
		t.Errorf("Use = %q, want %q", cmd.Use, "bookchat")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	wantSubs := []string{"serve", "mcp", "version"}
	for _, name := range wantSubs {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"verbose", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-02")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "1.2.3") {
		t.Errorf("output %q missing version", output)
	}
	if !strings.Contains(output, "abc123") {
		t.Errorf("output %q missing commit", output)
	}
}

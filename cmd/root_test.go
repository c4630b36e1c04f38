package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/labelcheck/internal/manifest"
)

func TestTemplateCmd(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"template"})

	if err := root.Execute(); err != nil {
		t.Fatalf("template failed: %v", err)
	}
	if out.String() != manifest.Template() {
		t.Errorf("Expected template output, got %q", out.String())
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "verify", "batch", "template"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Errorf("Expected subcommand %s: %v", name, err)
		}
	}

	timeout, err := root.PersistentFlags().GetDuration("timeout")
	if err != nil {
		t.Fatalf("Expected --timeout flag: %v", err)
	}
	if timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", timeout)
	}
}

func TestBatchCmdMissingManifest(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"batch", "--manifest", t.TempDir() + "/missing.csv"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "manifest file not found") {
		t.Errorf("Expected manifest not found error, got %v", err)
	}
}

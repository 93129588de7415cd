package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPrompt_Default(t *testing.T) {
	prompt, err := GetPrompt(KeyDecompose, "")
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	for _, want := range []string{"TASK:", "DEPENDS_ON:", "ACCEPTANCE_CRITERIA:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("default prompt missing %q", want)
		}
	}
}

func TestGetPrompt_UnknownKey(t *testing.T) {
	if _, err := GetPrompt(PromptKey("Nope"), ""); err == nil {
		t.Error("expected error for unknown prompt key")
	}
}

func TestGetPrompt_CustomOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "my custom decomposition prompt"
	if err := os.WriteFile(filepath.Join(dir, "decompose_prompt.txt"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	prompt, err := GetPrompt(KeyDecompose, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if prompt != custom {
		t.Errorf("expected custom prompt, got %q", prompt)
	}
}

func TestGetPrompt_MissingCustomFallsBack(t *testing.T) {
	prompt, err := GetPrompt(KeyDecompose, t.TempDir())
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if prompt != DecomposeSystemPrompt {
		t.Error("expected default prompt when no override file exists")
	}
}

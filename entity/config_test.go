package entity

import (
	"os"
	"path"
	"testing"
)

func TestUnmarshalConfig(t *testing.T) {
	spec := `settings:
  root_dir: /srv/repo
patch:
  - name: rename-export
    file: src/extract.js
    message: Updated extract.js
    validate: node --check
    replace:
      - old: searchConfig
        new: getSearchConfig
      - old: legacyConfig
        absent: true
`

	configFile := path.Join(t.TempDir(), "pat.yml")
	err := os.WriteFile(configFile, []byte(spec), 0o644)
	if err != nil {
		t.Fatalf("error writing config file %s: %v", configFile, err)
	}

	config, err := UnmarshalConfig(configFile)
	if err != nil {
		t.Fatalf("error unmarshaling config: %v", err)
	}

	if config.Filename != configFile {
		t.Errorf("Filename = %s, want %s", config.Filename, configFile)
	}
	if config.Settings.RootDir != "/srv/repo" {
		t.Errorf("Settings.RootDir = %s, want /srv/repo", config.Settings.RootDir)
	}

	if len(config.Patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(config.Patches))
	}
	patch := config.Patches[0]
	if patch.File != "src/extract.js" {
		t.Errorf("patch file = %s, want src/extract.js", patch.File)
	}
	if patch.Validate != "node --check" {
		t.Errorf("patch validate = %s, want node --check", patch.Validate)
	}
	if len(patch.Replace) != 2 {
		t.Fatalf("expected 2 replacements, got %d", len(patch.Replace))
	}
	if patch.Replace[0].New != "getSearchConfig" {
		t.Errorf("first replacement new = %s, want getSearchConfig", patch.Replace[0].New)
	}
	if !patch.Replace[1].Absent {
		t.Errorf("second replacement should be absent")
	}
}

func TestUnmarshalConfigMissingFile(t *testing.T) {
	config, err := UnmarshalConfig(path.Join(t.TempDir(), "pat.yml"))
	if err != nil {
		t.Fatalf("error unmarshaling missing config: %v", err)
	}

	builtin := BuiltinPatches()
	if len(config.Patches) != len(builtin) {
		t.Fatalf("expected %d built-in patches, got %d", len(builtin), len(config.Patches))
	}
	if config.Patches[0].Name != builtin[0].Name {
		t.Errorf("patch name = %s, want %s", config.Patches[0].Name, builtin[0].Name)
	}
	if config.Patches[0].File != "src/extract.js" {
		t.Errorf("patch file = %s, want src/extract.js", config.Patches[0].File)
	}
}

func TestConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  string
	}{
		{
			name: "Explicit message",
			patch: Patch{
				File:    "src/extract.js",
				Message: "Updated extract.js to use getSearchConfig()",
			},
			want: "Updated extract.js to use getSearchConfig()",
		},
		{
			name:  "Default message",
			patch: Patch{File: "src/extract.js"},
			want:  "Patched src/extract.js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.Confirmation(); got != tt.want {
				t.Errorf("Confirmation() = %v, want %v", got, tt.want)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ostools/mounttab/pkg/mounttab"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mounttab.conf")
	content := `
mounts_path = "/tmp/mounts"
fstab_path = "/tmp/fstab"
strict = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MountsPath != "/tmp/mounts" {
		t.Errorf("MountsPath = %q, want %q", cfg.MountsPath, "/tmp/mounts")
	}
	if cfg.FstabPath != "/tmp/fstab" {
		t.Errorf("FstabPath = %q, want %q", cfg.FstabPath, "/tmp/fstab")
	}
	if cfg.SwapsPath != "" {
		t.Errorf("SwapsPath = %q, want empty", cfg.SwapsPath)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mounttab.conf")
	if err := os.WriteFile(path, []byte("mounts_path = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestMerge(t *testing.T) {
	cfg := &Config{MountsPath: "/from/file", Strict: true}

	cfg.Merge("", "/cli/swaps", "", false)

	if cfg.MountsPath != "/from/file" {
		t.Errorf("MountsPath = %q, empty CLI value should not override", cfg.MountsPath)
	}
	if cfg.SwapsPath != "/cli/swaps" {
		t.Errorf("SwapsPath = %q, want %q", cfg.SwapsPath, "/cli/swaps")
	}
	if !cfg.Strict {
		t.Error("Strict = false, a false flag should not clear the config value")
	}

	cfg.Merge("/cli/mounts", "", "", true)
	if cfg.MountsPath != "/cli/mounts" {
		t.Errorf("MountsPath = %q, CLI value should override", cfg.MountsPath)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{FstabPath: "/custom/fstab"}
	cfg.ApplyDefaults()

	if cfg.MountsPath != mounttab.ProcMountsPath {
		t.Errorf("MountsPath = %q, want %q", cfg.MountsPath, mounttab.ProcMountsPath)
	}
	if cfg.SwapsPath != mounttab.ProcSwapsPath {
		t.Errorf("SwapsPath = %q, want %q", cfg.SwapsPath, mounttab.ProcSwapsPath)
	}
	if cfg.FstabPath != "/custom/fstab" {
		t.Errorf("FstabPath = %q, defaults should not override set values", cfg.FstabPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"all absolute", Config{MountsPath: "/a", SwapsPath: "/b", FstabPath: "/c"}, false},
		{"relative mounts path", Config{MountsPath: "a", SwapsPath: "/b", FstabPath: "/c"}, true},
		{"empty fstab path", Config{MountsPath: "/a", SwapsPath: "/b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMode(t *testing.T) {
	if (&Config{}).Mode() != mounttab.Permissive {
		t.Error("Mode() = Strict, want Permissive by default")
	}
	if (&Config{Strict: true}).Mode() != mounttab.Strict {
		t.Error("Mode() = Permissive, want Strict")
	}
}

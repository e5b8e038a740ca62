package storage

import (
	"path/filepath"
	"testing"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := InitConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Run.Mode != "suggest" {
		t.Errorf("default mode = %q, want suggest-only", cfg.Run.Mode)
	}
	if cfg.Run.AutoConfirm {
		t.Error("auto-confirm must default off")
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("default provider = %q", cfg.AI.Provider)
	}
	if cfg.AI.Timeout != 30 {
		t.Errorf("default translator timeout = %d", cfg.AI.Timeout)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := InitConfig()
	if err != nil {
		t.Fatal(err)
	}

	cfg.Run.PreferParu = true
	cfg.Run.Mode = "apply"
	cfg.Safety.ExtraForbidden = []string{"pacman -rsn glibc"}
	if err := SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	reloaded, err := InitConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Run.PreferParu {
		t.Error("prefer_paru not persisted")
	}
	if reloaded.Run.Mode != "apply" {
		t.Errorf("mode = %q after reload", reloaded.Run.Mode)
	}
	if len(reloaded.Safety.ExtraForbidden) != 1 {
		t.Errorf("extra_forbidden = %v", reloaded.Safety.ExtraForbidden)
	}
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ArchaidDirName) {
		t.Errorf("config dir = %q", dir)
	}
}

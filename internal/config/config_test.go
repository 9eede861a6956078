package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "grub-static.conf")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

func TestConfigLoad(t *testing.T) {
	configPath := writeConfigFile(t, `# static grub overrides
GRUB_STATIC_CONFIG_DIR=/opt/grub2-static

GRUB_STATIC_BOOT_DIR = sysroot/boot
GRUB_STATIC_MODE="0600"
`)

	cfg := New(configPath)
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{KeyConfigDir, "/opt/grub2-static"},
		{KeyBootDir, "sysroot/boot"},
		{KeyMode, "0600"},
		{KeyGrub2Dir, "grub2"},
		{KeyEFIDir, "boot/efi/EFI"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetOrDefault(tt.key, ""); got != tt.want {
				t.Errorf("GetOrDefault(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfigLoadMalformed(t *testing.T) {
	configPath := writeConfigFile(t, "GRUB_STATIC_BOOT_DIR\n")

	cfg := New(configPath)
	if err := cfg.Load(); err == nil {
		t.Error("Load() error = nil, want error for line without '='")
	}
}

func TestConfigGetOrDefault(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "missing.conf"))

	if val := cfg.GetOrDefault("NONEXISTENT", "default_value"); val != "default_value" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "default_value")
	}

	if val := cfg.GetOrDefault(KeyDropinDir, "fallback"); val != "configs.d" {
		t.Errorf("GetOrDefault() = %v, want table default %v", val, "configs.d")
	}
}

func TestConfigGetBool(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
		wantErr bool
	}{
		{name: "default", content: "", want: false},
		{name: "true", content: "GRUB_STATIC_STRICT_VENDOR=true\n", want: true},
		{name: "one", content: "GRUB_STATIC_STRICT_VENDOR=1\n", want: true},
		{name: "garbage", content: "GRUB_STATIC_STRICT_VENDOR=maybe\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New(writeConfigFile(t, tt.content))
			got, err := cfg.GetBool(KeyStrictVendor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetBool() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigGetFileMode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    os.FileMode
		wantErr bool
	}{
		{name: "default", content: "", want: 0644},
		{name: "explicit", content: "GRUB_STATIC_MODE=0600\n", want: 0600},
		{name: "no leading zero", content: "GRUB_STATIC_MODE=640\n", want: 0640},
		{name: "not octal", content: "GRUB_STATIC_MODE=0999\n", wantErr: true},
		{name: "setuid bits", content: "GRUB_STATIC_MODE=4755\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New(writeConfigFile(t, tt.content))
			got, err := cfg.GetFileMode(KeyMode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetFileMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetFileMode() = %#o, want %#o", got, tt.want)
			}
		})
	}
}

func TestConfigGetAll(t *testing.T) {
	cfg := New(writeConfigFile(t, "A=1\nB=2\n"))

	all := cfg.GetAll()
	if len(all) != 2 || all["A"] != "1" || all["B"] != "2" {
		t.Errorf("GetAll() = %v, want map[A:1 B:2]", all)
	}

	all["A"] = "changed"
	if v := cfg.GetOrDefault("A", ""); v != "1" {
		t.Errorf("GetAll() returned internal map, got %v after modifying copy", v)
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "nonexistent.conf"))

	if err := cfg.Load(); err != nil {
		t.Errorf("Load() on non-existent file error = %v, want nil", err)
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := "/tmp/test.conf"
	cfg := New(expectedPath)

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}

	if New("").FilePath() != DefaultFilePath {
		t.Errorf("FilePath() = %v, want %v", New("").FilePath(), DefaultFilePath)
	}
}

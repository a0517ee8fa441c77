package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 0\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port default = %d", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model default = %q", cfg.OpenAI.Model)
	}
	if cfg.Scorer.TimeoutSeconds != 20 || cfg.Trainer.TimeoutSeconds != 120 {
		t.Errorf("timeout defaults = %d/%d", cfg.Scorer.TimeoutSeconds, cfg.Trainer.TimeoutSeconds)
	}
	if cfg.Classifier.Mode != ModeAuto {
		t.Errorf("mode default = %q", cfg.Classifier.Mode)
	}
}

func TestHasRealKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "empty", key: "", want: false},
		{name: "whitespace", key: "   ", want: false},
		{name: "env placeholder", key: "sk-your_key_here", want: false},
		{name: "real looking", key: "sk-abc123", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.OpenAI.APIKey = tt.key
			if got := c.HasRealKey(); got != tt.want {
				t.Errorf("HasRealKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		key    string
		script string
		want   string
	}{
		{name: "auto without anything", mode: ModeAuto, want: ModeMock},
		{name: "auto with key", mode: ModeAuto, key: "sk-abc", want: ModeGenerative},
		{name: "auto with scorer", mode: ModeAuto, script: "predict.py", want: ModeLocal},
		{name: "auto with both", mode: ModeAuto, key: "sk-abc", script: "predict.py", want: ModeHybrid},
		{name: "placeholder key stays mock", mode: ModeAuto, key: "your_key_here", want: ModeMock},
		{name: "explicit mock wins over key", mode: ModeMock, key: "sk-abc", want: ModeMock},
		{name: "explicit generative passes through", mode: ModeGenerative, want: ModeGenerative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.Classifier.Mode = tt.mode
			c.OpenAI.APIKey = tt.key
			c.Scorer.Script = tt.script
			if got := c.ResolveMode(); got != tt.want {
				t.Errorf("ResolveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnvOverridesKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	cfg, err := Load(writeConfig(t, "openai:\n  apiKey: from-file\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("apiKey = %q, want env value", cfg.OpenAI.APIKey)
	}
}

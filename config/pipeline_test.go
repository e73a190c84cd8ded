package config

import (
	"reflect"
	"testing"
)

func TestGetPipelineConfigDefaults(t *testing.T) {
	cfg, err := GetPipelineConfig()
	if err != nil {
		t.Fatalf("GetPipelineConfig() error = %v", err)
	}
	if cfg.TargetMinSeconds != 40 || cfg.TargetMaxSeconds != 50 || cfg.HardCeilingSeconds != 55 {
		t.Fatalf("band = %.0f/%.0f/%.0f, want 40/50/55", cfg.TargetMinSeconds, cfg.TargetMaxSeconds, cfg.HardCeilingSeconds)
	}
	if cfg.DriftToleranceSeconds != 1.5 || cfg.DurationFloorSeconds != 0.5 {
		t.Fatalf("tolerances = %v/%v, want 1.5/0.5", cfg.DriftToleranceSeconds, cfg.DurationFloorSeconds)
	}
	if cfg.NoMatchSentinel != "없음" {
		t.Fatalf("NoMatchSentinel = %q", cfg.NoMatchSentinel)
	}
	if len(cfg.FilterKeywords) == 0 {
		t.Fatal("default filter keywords missing")
	}
}

func TestGetPipelineConfigOverrides(t *testing.T) {
	t.Setenv("TARGET_MIN_SECONDS", "30")
	t.Setenv("TARGET_MAX_SECONDS", "35")
	t.Setenv("HARD_CEILING_SECONDS", "40")
	t.Setenv("FILTER_KEYWORDS", "배송, 환불 , ,전화번호")

	cfg, err := GetPipelineConfig()
	if err != nil {
		t.Fatalf("GetPipelineConfig() error = %v", err)
	}
	if cfg.TargetMinSeconds != 30 || cfg.TargetMaxSeconds != 35 || cfg.HardCeilingSeconds != 40 {
		t.Fatalf("band = %.0f/%.0f/%.0f, want overrides", cfg.TargetMinSeconds, cfg.TargetMaxSeconds, cfg.HardCeilingSeconds)
	}
	if !reflect.DeepEqual(cfg.FilterKeywords, []string{"배송", "환불", "전화번호"}) {
		t.Fatalf("FilterKeywords = %v, want trimmed non-empty entries", cfg.FilterKeywords)
	}
}

func TestGetPipelineConfigRejectsInconsistentBand(t *testing.T) {
	t.Setenv("TARGET_MIN_SECONDS", "50")
	t.Setenv("TARGET_MAX_SECONDS", "40")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("expected an error for max below min")
	}
}

func TestGetPipelineConfigRejectsBadNumber(t *testing.T) {
	t.Setenv("HARD_CEILING_SECONDS", "not-a-number")

	if _, err := GetPipelineConfig(); err == nil {
		t.Fatal("expected an error for an unparseable value")
	}
}

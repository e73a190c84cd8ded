package config

import (
	"fmt"
	"os"
	"strings"
)

// Duration-band tolerances vary between revisions of the original pipeline;
// they are configuration with one consistent default, never constants baked
// into the services.
type PipelineConfig struct {
	TargetMinSeconds      float64
	TargetMaxSeconds      float64
	HardCeilingSeconds    float64
	DriftToleranceSeconds float64
	DurationFloorSeconds  float64
	PromptExcerptLimit    int
	MaxMatchCandidates    int
	NoMatchSentinel       string
	FilterKeywords        []string
}

// Boilerplate markers on Korean e-commerce detail pages: shipping, courier,
// returns, exchange, customer service, order history, payment, business days,
// caution notices.
var defaultFilterKeywords = []string{
	"배송", "택배", "반품", "교환", "고객센터", "주문내역", "결제", "영업일", "주의사항",
}

func GetPipelineConfig() (*PipelineConfig, error) {
	targetMin, err := envFloatOr("TARGET_MIN_SECONDS", 40)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TARGET_MIN_SECONDS")
	}
	targetMax, err := envFloatOr("TARGET_MAX_SECONDS", 50)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TARGET_MAX_SECONDS")
	}
	hardCeiling, err := envFloatOr("HARD_CEILING_SECONDS", 55)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HARD_CEILING_SECONDS")
	}
	driftTolerance, err := envFloatOr("DRIFT_TOLERANCE_SECONDS", 1.5)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DRIFT_TOLERANCE_SECONDS")
	}
	durationFloor, err := envFloatOr("DURATION_FLOOR_SECONDS", 0.5)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DURATION_FLOOR_SECONDS")
	}
	promptExcerptLimit, err := envIntOr("PROMPT_EXCERPT_LIMIT", 2500)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PROMPT_EXCERPT_LIMIT")
	}
	maxCandidates, err := envIntOr("MAX_MATCH_CANDIDATES", 10)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MAX_MATCH_CANDIDATES")
	}
	if targetMin <= 0 || targetMax < targetMin || hardCeiling < targetMax {
		return nil, fmt.Errorf("duration band is inconsistent: min %.1f max %.1f ceiling %.1f", targetMin, targetMax, hardCeiling)
	}

	keywords := defaultFilterKeywords
	if raw := os.Getenv("FILTER_KEYWORDS"); raw != "" {
		var parsed []string
		for _, keyword := range strings.Split(raw, ",") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				parsed = append(parsed, keyword)
			}
		}
		keywords = parsed
	}

	return &PipelineConfig{
		TargetMinSeconds:      targetMin,
		TargetMaxSeconds:      targetMax,
		HardCeilingSeconds:    hardCeiling,
		DriftToleranceSeconds: driftTolerance,
		DurationFloorSeconds:  durationFloor,
		PromptExcerptLimit:    promptExcerptLimit,
		MaxMatchCandidates:    maxCandidates,
		NoMatchSentinel:       envOr("NO_MATCH_SENTINEL", "없음"),
		FilterKeywords:        keywords,
	}, nil
}

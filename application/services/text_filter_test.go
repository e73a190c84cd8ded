package services

import (
	"reflect"
	"testing"
)

var testKeywords = []string{"배송", "택배", "반품", "교환", "고객센터", "주문내역", "결제", "영업일", "주의사항"}

func TestFilterDropsBoilerplateAndDigitRuns(t *testing.T) {
	filter := NewTextFilter(noopLogger{}, testKeywords)

	fragments := []string{
		"배송은 3일 이내",
		"천연 재료로 만든 수제 쿠키",
		"전화번호 02-1234-5678",
	}

	got := filter.Filter(fragments)
	want := []string{"천연 재료로 만든 수제 쿠키"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterDigitRunBoundary(t *testing.T) {
	filter := NewTextFilter(noopLogger{}, testKeywords)

	got := filter.Filter([]string{"가격 1234원", "인증번호 12345"})
	want := []string{"가격 1234원"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterNeverStarves(t *testing.T) {
	logger := &recordingLogger{}
	filter := NewTextFilter(logger, testKeywords)

	fragments := []string{"배송 안내", "고객센터 02-123-45678"}

	got := filter.Filter(fragments)
	if !reflect.DeepEqual(got, fragments) {
		t.Fatalf("Filter() = %v, want the original list %v", got, fragments)
	}
	if len(logger.warnings) == 0 {
		t.Fatal("expected a warning when filtering removes every fragment")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	filter := NewTextFilter(noopLogger{}, testKeywords)

	if got := filter.Filter(nil); len(got) != 0 {
		t.Fatalf("Filter(nil) = %v, want empty", got)
	}
}

package domain

import (
	"reflect"
	"testing"
)

func TestResolveEffectiveDuration(t *testing.T) {
	cases := []struct {
		name  string
		scene Scene
		want  float64
	}{
		{"measured wins", Scene{DeclaredDuration: 8, MeasuredAudioDuration: 9.4}, 9.4},
		{"declared fallback", Scene{DeclaredDuration: 8}, 8},
		{"clamped to floor", Scene{DeclaredDuration: 0.1}, 0.5},
		{"zero everything", Scene{}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.scene.ResolveEffectiveDuration(0.5)
			if tc.scene.EffectiveDuration != tc.want {
				t.Fatalf("EffectiveDuration = %v, want %v", tc.scene.EffectiveDuration, tc.want)
			}
		})
	}
}

func TestHasDescriptiveFields(t *testing.T) {
	if (Scene{}).HasDescriptiveFields() {
		t.Error("empty scene should not be descriptive")
	}
	if !(Scene{Subtitle: "caption"}).HasDescriptiveFields() {
		t.Error("subtitle alone should count as descriptive")
	}
}

func TestSceneListRenumber(t *testing.T) {
	list := SceneList{{SceneNumber: 9}, {SceneNumber: 0}, {SceneNumber: 9}}
	list.Renumber()
	for i, scene := range list {
		if scene.SceneNumber != i+1 {
			t.Fatalf("scene %d has number %d", i, scene.SceneNumber)
		}
	}
}

func TestSceneListTotals(t *testing.T) {
	list := SceneList{
		{DeclaredDuration: 10, EffectiveDuration: 9.5},
		{DeclaredDuration: 12, EffectiveDuration: 13},
	}
	if got := list.DeclaredTotal(); got != 22 {
		t.Errorf("DeclaredTotal() = %v, want 22", got)
	}
	if got := list.EffectiveTotal(); got != 22.5 {
		t.Errorf("EffectiveTotal() = %v, want 22.5", got)
	}
}

func TestAssetPoolDeduplicates(t *testing.T) {
	pool := NewAssetPool([]string{"a.jpg", "b.jpg", "a.jpg"})
	if pool.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pool.Len())
	}
	if got := pool.Paths(); !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Fatalf("Paths() = %v", got)
	}
}

func TestAssetPoolFirstAndEmpty(t *testing.T) {
	empty := NewAssetPool(nil)
	if !empty.Empty() || empty.First() != "" {
		t.Fatal("empty pool should report Empty and a blank First")
	}

	pool := NewAssetPool([]string{"x/front.jpg", "x/detail.jpg"})
	if pool.First() != "x/front.jpg" {
		t.Fatalf("First() = %q", pool.First())
	}
}

func TestAssetPoolCandidates(t *testing.T) {
	pool := NewAssetPool([]string{"a", "b", "c"})
	if got := pool.Candidates(2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Candidates(2) = %v", got)
	}
	if got := pool.Candidates(10); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Candidates(10) = %v", got)
	}
}

func TestAssetPoolFindByFileName(t *testing.T) {
	pool := NewAssetPool([]string{"output/images_raw/front.jpg"})
	path, ok := pool.FindByFileName("front.jpg")
	if !ok || path != "output/images_raw/front.jpg" {
		t.Fatalf("FindByFileName() = %q, %v", path, ok)
	}
	if _, ok := pool.FindByFileName("missing.jpg"); ok {
		t.Fatal("unknown file name must not resolve")
	}
}

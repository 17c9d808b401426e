package xmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAnnotations(t *testing.T, assembly, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, assembly+annotationsFileSuffix)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write annotations file: %v", err)
	}

	return dir
}

func TestAnnotationCacheSkipsRereads(t *testing.T) {
	dir := writeAnnotations(t, "Contoso.Core",
		`<assembly><member name="T:Contoso.Core.Widget"><summary>Cached.</summary></member></assembly>`)

	reads := 0
	c := New(
		WithAnnotationsDir(dir),
		WithAnnotationCache(NewAnnotationCache(0)),
	)
	c.readFile = func(path string) ([]byte, error) {
		reads++

		return os.ReadFile(path)
	}

	sym := Member{Declaration: Declaration{
		DisplayName:  "T:Contoso.Core.Widget",
		AssemblyName: "Contoso.Core",
	}}

	for i := 0; i < 3; i++ {
		result, err := c.Resolve(sym)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.Text(), "Cached.") {
			t.Fatalf("expected external summary, got %q", result.Text())
		}
	}

	if reads != 1 {
		t.Errorf("expected a single disk read with cache attached, got %d", reads)
	}
}

func TestNoCacheRereadsEveryCall(t *testing.T) {
	dir := writeAnnotations(t, "Contoso.Core",
		`<assembly><member name="T:Contoso.Core.Widget"><summary>Fresh.</summary></member></assembly>`)

	reads := 0
	c := New(WithAnnotationsDir(dir))
	c.readFile = func(path string) ([]byte, error) {
		reads++

		return os.ReadFile(path)
	}

	sym := Member{Declaration: Declaration{
		DisplayName:  "T:Contoso.Core.Widget",
		AssemblyName: "Contoso.Core",
	}}

	for i := 0; i < 3; i++ {
		if _, err := c.Resolve(sym); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if reads != 3 {
		t.Errorf("expected one disk read per call without a cache, got %d", reads)
	}
}

func TestAnnotationCacheMissThenHit(t *testing.T) {
	cache := NewAnnotationCache(4)

	if _, ok := cache.get("missing"); ok {
		t.Fatalf("expected miss on fresh cache")
	}

	dir := writeAnnotations(t, "Asm", `<assembly><member name="N">text</member></assembly>`)
	path := AnnotationsPath(dir, "Asm")

	got := externalDocumentation("N", "Asm", dir, "\n", cache, os.ReadFile)
	if !strings.Contains(got, "text") {
		t.Fatalf("expected entry text, got %q", got)
	}

	if _, ok := cache.get(path); !ok {
		t.Errorf("expected parsed file cached after successful load")
	}
}

func TestNilAnnotationCacheIsInert(t *testing.T) {
	var cache *AnnotationCache

	if _, ok := cache.get("any"); ok {
		t.Errorf("expected nil cache to miss")
	}

	// put on a nil cache must not panic.
	cache.put("any", nil)
}

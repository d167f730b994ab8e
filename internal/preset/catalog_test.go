package preset

import (
	"reflect"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"ultrafast", "superfast", "veryfast", "faster", "fast",
		"medium", "slow", "slower", "veryslow", "placebo",
	}
	reference := Catalog()
	got := make([]string, 0, len(reference))
	for _, p := range reference {
		got = append(got, p.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("catalog order = %v, want %v", got, want)
	}
}

func TestCatalogSharedSchema(t *testing.T) {
	schema := Schema()
	if len(schema) == 0 {
		t.Fatal("empty schema")
	}
	for _, p := range Catalog() {
		if got, want := p.Params.Len(), len(schema); got != want {
			t.Errorf("%s has %d params, want %d", p.Name, got, want)
		}
		for _, key := range schema {
			if _, ok := p.Params.Get(key); !ok {
				t.Errorf("%s missing parameter %q", p.Name, key)
			}
		}
	}
}

func TestCatalogStable(t *testing.T) {
	first := Catalog()
	second := Catalog()
	if len(first) != len(second) {
		t.Fatalf("catalog size changed between calls: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Params != second[i].Params {
			t.Errorf("catalog entry %d differs between calls", i)
		}
	}
}

package testdata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleIsDeterministic(t *testing.T) {
	a := Sample(40, 7)
	b := Sample(40, 7)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed differs (-a +b):\n%s", diff)
	}
	if len(a.DataProducts) != 40 || len(a.Domains) != len(domains) {
		t.Fatalf("got %d products in %d domains", len(a.DataProducts), len(a.Domains))
	}
}

func TestSampleProductsAreUnique(t *testing.T) {
	cat := Sample(200, 1)
	seen := map[string]bool{}
	for _, p := range cat.DataProducts {
		if seen[p.FullyQualifiedName] {
			t.Fatalf("duplicate fqn %s", p.FullyQualifiedName)
		}
		seen[p.FullyQualifiedName] = true
		if p.Domain.FullyQualifiedName == "" || p.ID == "" {
			t.Fatalf("unresolved product %+v", p)
		}
	}
}

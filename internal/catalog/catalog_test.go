package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleCatalog = `
domains:
  - name: Finance
    displayName: Finance & Accounting
    owner:
      name: jdoe
  - name: marketing.eu
dataProducts:
  - name: revenue
    displayName: Revenue
    domain: Finance
    description: Booked revenue by month
  - name: campaigns
    domain: marketing.eu
    owner:
      name: growth
      displayName: Growth Team
`

func TestDecodeResolvesNamesAndIDs(t *testing.T) {
	cat, err := Decode(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cat.Domains) != 2 || len(cat.DataProducts) != 2 {
		t.Fatalf("got %d domains %d products", len(cat.Domains), len(cat.DataProducts))
	}
	rev := cat.DataProducts[0]
	if rev.FullyQualifiedName != "Finance.revenue" {
		t.Fatalf("fqn = %q", rev.FullyQualifiedName)
	}
	if rev.Domain.EntityName() != "Finance & Accounting" || rev.Domain.Type != TypeDomain {
		t.Fatalf("domain ref = %+v", rev.Domain)
	}
	if rev.ID != NewID(TypeDataProduct, "Finance.revenue") {
		t.Fatalf("id %q is not derived from fqn", rev.ID)
	}
	camp := cat.DataProducts[1]
	if camp.FullyQualifiedName != `"marketing.eu".campaigns` {
		t.Fatalf("quoted fqn = %q", camp.FullyQualifiedName)
	}
}

func TestDecodeRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown domain", doc: "dataProducts:\n  - name: x\n    domain: nowhere\n"},
		{name: "missing name", doc: "domains:\n  - displayName: X\n"},
		{name: "duplicate domain", doc: "domains:\n  - name: A\n  - name: A\n"},
		{name: "duplicate product", doc: "domains:\n  - name: A\ndataProducts:\n  - {name: p, domain: A}\n  - {name: p, domain: A}\n"},
		{name: "unknown field", doc: "domains:\n  - name: A\n    colour: red\n"},
		{name: "quote in domain name", doc: "domains:\n  - name: 'a\"b'\n"},
		{name: "quote in product name", doc: "domains:\n  - name: A\ndataProducts:\n  - {name: 'p.\"q', domain: A}\n  - {name: p.q, domain: A}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	cat, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cat.Domains) != 0 || len(cat.DataProducts) != 0 {
		t.Fatalf("got %+v", cat)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o600); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.DataProducts) != 2 {
		t.Fatalf("products = %d", len(cat.DataProducts))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidName(t *testing.T) {
	for name, want := range map[string]bool{"orders": true, "db.v2": true, "": false, `a"b`: false} {
		if got := ValidName(name); got != want {
			t.Fatalf("ValidName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFQNRoundTrip(t *testing.T) {
	tests := []struct {
		parts []string
		fqn   string
	}{
		{parts: []string{"a"}, fqn: "a"},
		{parts: []string{"a", "b"}, fqn: "a.b"},
		{parts: []string{"svc", "db.v2", "t"}, fqn: `svc."db.v2".t`},
	}
	for _, tt := range tests {
		if got := BuildFQN(tt.parts...); got != tt.fqn {
			t.Fatalf("BuildFQN(%v) = %q, want %q", tt.parts, got, tt.fqn)
		}
		if diff := cmp.Diff(tt.parts, SplitFQN(tt.fqn)); diff != "" {
			t.Fatalf("SplitFQN(%q) (-want +got):\n%s", tt.fqn, diff)
		}
	}
}

func TestFQNParts(t *testing.T) {
	got := FQNParts("a.b.c", "c", "extra")
	want := []string{"a", "a.b", "a.b.c", "b.c", "c", "extra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parts (-want +got):\n%s", diff)
	}
}

func TestProductDocument(t *testing.T) {
	p := DataProduct{
		ID:                 "1",
		Name:               "revenue",
		FullyQualifiedName: "Finance.revenue",
		Owner:              &EntityReference{Name: "jdoe"},
	}
	doc := ProductDocument(p)
	if doc.EntityType != TypeDataProduct {
		t.Fatalf("entity type = %q", doc.EntityType)
	}
	if doc.Owner == nil || doc.Owner.DisplayName != "jdoe" {
		t.Fatalf("owner = %+v, want display name defaulted", doc.Owner)
	}
	if p.Owner.DisplayName != "" {
		t.Fatal("ProductDocument mutated the source owner")
	}
	wantSuggest := []Suggest{{Input: "Finance.revenue", Weight: 5}, {Input: "revenue", Weight: 10}}
	if diff := cmp.Diff(wantSuggest, doc.Suggest); diff != "" {
		t.Fatalf("suggest (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Finance", "Finance.revenue", "revenue"}, doc.FQNParts); diff != "" {
		t.Fatalf("fqnParts (-want +got):\n%s", diff)
	}
}

package testdata

import (
	"fmt"
	"math/rand"

	"github.com/jask/dpselect/internal/catalog"
)

var domains = []struct {
	Name, DisplayName, Owner string
}{
	{"Finance", "Finance", "finance-team"},
	{"Sales", "Sales Ops", "sales-eng"},
	{"Marketing", "Marketing", "growth"},
	{"Supply", "Supply Chain", "logistics"},
	{"People", "People & Culture", ""},
}

var subjects = []string{
	"revenue", "orders", "customers", "invoices", "shipments", "campaigns",
	"leads", "churn", "inventory", "payroll", "forecast", "returns",
}

var grains = []string{"daily", "weekly", "monthly", "snapshot"}

// Sample builds a catalog of n data products spread over the sample domains. The same
// seed always yields the same catalog.
func Sample(n int, seed int64) catalog.Catalog {
	r := rand.New(rand.NewSource(seed))

	var cat catalog.Catalog
	for _, d := range domains {
		fqn := catalog.BuildFQN(d.Name)
		dom := catalog.Domain{
			ID:                 catalog.NewID(catalog.TypeDomain, fqn),
			Name:               d.Name,
			DisplayName:        d.DisplayName,
			FullyQualifiedName: fqn,
			Description:        d.DisplayName + " data products",
		}
		if d.Owner != "" {
			dom.Owner = &catalog.EntityReference{Type: "team", Name: d.Owner}
		}
		cat.Domains = append(cat.Domains, dom)
	}

	for i := 0; i < n; i++ {
		dom := cat.Domains[r.Intn(len(cat.Domains))]
		subject := subjects[r.Intn(len(subjects))]
		grain := grains[r.Intn(len(grains))]
		name := fmt.Sprintf("%s_%s_%03d", subject, grain, i)
		fqn := catalog.BuildFQN(dom.Name, name)
		p := catalog.DataProduct{
			ID:                 catalog.NewID(catalog.TypeDataProduct, fqn),
			Name:               name,
			FullyQualifiedName: fqn,
			Description:        fmt.Sprintf("%s %s aggregated %s", dom.DisplayName, subject, grain),
			Domain:             dom.Ref(),
		}
		// roughly a third have no display name and fall back to the name
		if r.Intn(3) > 0 {
			p.DisplayName = fmt.Sprintf("%s %s %d", titleCase(grain), titleCase(subject), i)
		}
		cat.DataProducts = append(cat.DataProducts, p)
	}
	return cat
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a catalog file that cannot be imported.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is a resolved set of domains and data products.
type Catalog struct {
	Domains      []Domain
	DataProducts []DataProduct
}

type fileDomain struct {
	Name        string           `yaml:"name"`
	DisplayName string           `yaml:"displayName"`
	Description string           `yaml:"description"`
	Owner       *EntityReference `yaml:"owner"`
}

type fileProduct struct {
	Name        string           `yaml:"name"`
	DisplayName string           `yaml:"displayName"`
	Description string           `yaml:"description"`
	Domain      string           `yaml:"domain"`
	Owner       *EntityReference `yaml:"owner"`
}

type catalogFile struct {
	Domains      []fileDomain  `yaml:"domains"`
	DataProducts []fileProduct `yaml:"dataProducts"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML catalog, assigning fully-qualified names and ids.
//
//	domains:
//	  - name: Finance
//	dataProducts:
//	  - name: revenue
//	    displayName: Revenue
//	    domain: Finance
func Decode(r io.Reader) (Catalog, error) {
	var cf catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cf.resolve()
}

func (cf catalogFile) resolve() (Catalog, error) {
	var cat Catalog
	domains := map[string]Domain{}
	for i, fd := range cf.Domains {
		name := strings.TrimSpace(fd.Name)
		if name == "" {
			return Catalog{}, fmt.Errorf("%w: domain %d has no name", ErrInvalid, i)
		}
		if !ValidName(name) {
			return Catalog{}, fmt.Errorf("%w: domain name %q contains a double quote", ErrInvalid, name)
		}
		if _, dup := domains[name]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate domain %q", ErrInvalid, name)
		}
		fqn := BuildFQN(name)
		d := Domain{
			ID:                 NewID(TypeDomain, fqn),
			Name:               name,
			DisplayName:        strings.TrimSpace(fd.DisplayName),
			FullyQualifiedName: fqn,
			Description:        fd.Description,
			Owner:              fd.Owner,
		}
		domains[name] = d
		cat.Domains = append(cat.Domains, d)
	}

	seen := map[string]struct{}{}
	for i, fp := range cf.DataProducts {
		name := strings.TrimSpace(fp.Name)
		if name == "" {
			return Catalog{}, fmt.Errorf("%w: data product %d has no name", ErrInvalid, i)
		}
		if !ValidName(name) {
			return Catalog{}, fmt.Errorf("%w: data product name %q contains a double quote", ErrInvalid, name)
		}
		d, ok := domains[strings.TrimSpace(fp.Domain)]
		if !ok {
			return Catalog{}, fmt.Errorf("%w: data product %q references unknown domain %q", ErrInvalid, name, fp.Domain)
		}
		fqn := BuildFQN(append(SplitFQN(d.FullyQualifiedName), name)...)
		if _, dup := seen[fqn]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate data product %q", ErrInvalid, fqn)
		}
		seen[fqn] = struct{}{}
		cat.DataProducts = append(cat.DataProducts, DataProduct{
			ID:                 NewID(TypeDataProduct, fqn),
			Name:               name,
			DisplayName:        strings.TrimSpace(fp.DisplayName),
			FullyQualifiedName: fqn,
			Description:        fp.Description,
			Domain:             d.Ref(),
			Owner:              fp.Owner,
		})
	}
	return cat, nil
}

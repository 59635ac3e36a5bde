package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Entity types.
const (
	TypeDomain      = "domain"
	TypeDataProduct = "dataProduct"
)

// EntityReference points at another catalog entity.
type EntityReference struct {
	ID                 string `yaml:"id,omitempty" json:"id,omitempty"`
	Type               string `yaml:"type,omitempty" json:"type,omitempty"`
	Name               string `yaml:"name" json:"name"`
	DisplayName        string `yaml:"displayName,omitempty" json:"displayName,omitempty"`
	FullyQualifiedName string `yaml:"fullyQualifiedName,omitempty" json:"fullyQualifiedName,omitempty"`
}

// Domain groups data products.
type Domain struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"displayName,omitempty"`
	FullyQualifiedName string           `json:"fullyQualifiedName"`
	Description        string           `json:"description,omitempty"`
	Owner              *EntityReference `json:"owner,omitempty"`
}

// Ref returns a reference to d.
func (d Domain) Ref() EntityReference {
	return EntityReference{
		ID:                 d.ID,
		Type:               TypeDomain,
		Name:               d.Name,
		DisplayName:        d.DisplayName,
		FullyQualifiedName: d.FullyQualifiedName,
	}
}

// DataProduct is a selectable catalog asset owned by a domain.
type DataProduct struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"displayName,omitempty"`
	FullyQualifiedName string           `json:"fullyQualifiedName"`
	Description        string           `json:"description,omitempty"`
	Domain             EntityReference  `json:"domain"`
	Owner              *EntityReference `json:"owner,omitempty"`
}

// EntityName returns the display name, falling back to the name.
func (r EntityReference) EntityName() string { return entityName(r.DisplayName, r.Name) }

func (d Domain) EntityName() string { return entityName(d.DisplayName, d.Name) }

func (p DataProduct) EntityName() string { return entityName(p.DisplayName, p.Name) }

func entityName(display, name string) string {
	if strings.TrimSpace(display) != "" {
		return display
	}
	return name
}

// NewID derives a stable id from the entity kind and its fully-qualified name.
func NewID(kind, fqn string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+fqn)).String()
}

package catalog

// Searchable fields and their boosts.
const (
	FieldDisplayName        = "displayName"
	FieldName               = "name"
	FieldDisplayNameKeyword = "displayName.keyword"
	FieldNameKeyword        = "name.keyword"
	FieldDescription        = "description"
	FieldFQNParts           = "fqnParts"
)

// FieldBoosts weights each searchable field.
var FieldBoosts = map[string]float64{
	FieldDisplayName:        15,
	FieldName:               15,
	FieldDisplayNameKeyword: 25,
	FieldNameKeyword:        25,
	FieldDescription:        1,
	FieldFQNParts:           10,
}

// Suggest is a completion input with its weight.
type Suggest struct {
	Input  string `json:"input"`
	Weight int    `json:"weight"`
}

// Document is the indexable form of an entity.
type Document struct {
	EntityType         string           `json:"entityType"`
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"displayName,omitempty"`
	FullyQualifiedName string           `json:"fullyQualifiedName"`
	Description        string           `json:"description,omitempty"`
	FQNParts           []string         `json:"fqnParts"`
	Suggest            []Suggest        `json:"suggest"`
	Owner              *EntityReference `json:"owner,omitempty"`
}

// ProductDocument builds the search document for p.
func ProductDocument(p DataProduct) Document {
	suggest := []Suggest{
		{Input: p.FullyQualifiedName, Weight: 5},
		{Input: p.Name, Weight: 10},
	}
	return Document{
		EntityType:         TypeDataProduct,
		ID:                 p.ID,
		Name:               p.Name,
		DisplayName:        p.DisplayName,
		FullyQualifiedName: p.FullyQualifiedName,
		Description:        p.Description,
		FQNParts:           FQNParts(p.FullyQualifiedName, inputs(suggest)...),
		Suggest:            suggest,
		Owner:              ownerRef(p.Owner),
	}
}

// ownerRef copies the owner with its display name defaulted to the name.
func ownerRef(o *EntityReference) *EntityReference {
	if o == nil {
		return nil
	}
	cp := *o
	cp.DisplayName = cp.EntityName()
	return &cp
}

func inputs(s []Suggest) []string {
	out := make([]string, 0, len(s))
	for _, sg := range s {
		out = append(out, sg.Input)
	}
	return out
}

package service

import (
	"context"
	"fmt"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/search"
	"github.com/jask/dpselect/internal/selector"
)

// DefaultPageSize is used when Products.PageSize is unset.
const DefaultPageSize = 10

// ProductSource returns one window of matching data products and the total match count.
// *repository.DataProductRepo and *IndexSource implement it.
type ProductSource interface {
	Search(ctx context.Context, term string, limit, offset int) ([]catalog.DataProduct, int, error)
}

// Products serves data products to a selector in fixed-size 1-based pages.
type Products struct {
	Source   ProductSource
	PageSize int
}

var _ selector.Fetcher[catalog.DataProduct] = (*Products)(nil)

// Fetch implements selector.Fetcher.
func (p *Products) Fetch(ctx context.Context, term string, page int) (selector.Page[catalog.DataProduct], error) {
	if page < 1 {
		return selector.Page[catalog.DataProduct]{}, fmt.Errorf("page %d out of range", page)
	}
	if p.Source == nil {
		return selector.Page[catalog.DataProduct]{}, fmt.Errorf("products: source not configured")
	}
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	items, total, err := p.Source.Search(ctx, term, size, (page-1)*size)
	if err != nil {
		return selector.Page[catalog.DataProduct]{}, err
	}
	data := make([]selector.Option[catalog.DataProduct], 0, len(items))
	for _, it := range items {
		data = append(data, ProductOption(it))
	}
	return selector.Page[catalog.DataProduct]{Data: data, Paging: selector.Paging{Total: total}}, nil
}

// ProductOption projects a data product into a selectable option keyed by its
// fully-qualified name.
func ProductOption(p catalog.DataProduct) selector.Option[catalog.DataProduct] {
	return selector.Option[catalog.DataProduct]{
		Label:   p.EntityName(),
		Value:   p.FullyQualifiedName,
		Context: p.Domain.EntityName(),
		Item:    p,
	}
}

// IndexSource serves data products from an in-memory search index.
type IndexSource struct {
	Index *search.Index[catalog.DataProduct]
}

// NewIndexSource indexes every data product of cat.
func NewIndexSource(cat catalog.Catalog) *IndexSource {
	ix := search.NewIndex[catalog.DataProduct]()
	for _, p := range cat.DataProducts {
		ix.Add(catalog.ProductDocument(p), p)
	}
	return &IndexSource{Index: ix}
}

func (s *IndexSource) Search(ctx context.Context, term string, limit, offset int) ([]catalog.DataProduct, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	hits, total := s.Index.Search(term, limit, offset)
	out := make([]catalog.DataProduct, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Item)
	}
	return out, total, nil
}

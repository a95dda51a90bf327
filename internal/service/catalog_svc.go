package service

import (
	"context"
	"log"
	"sort"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
)

// CatalogSvc is read-only over the product table.
type CatalogSvc struct {
	products  ProductStore
	recommend Recommender
}

func NewCatalogSvc(products ProductStore, recommend Recommender) *CatalogSvc {
	if recommend == nil {
		recommend = NoopRecommender{}
	}
	return &CatalogSvc{products: products, recommend: recommend}
}

func (s *CatalogSvc) Product(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NotFound("product not found")
		}
		return nil, domain.Internal("load product", err)
	}
	return p, nil
}

func (s *CatalogSvc) All(ctx context.Context) ([]domain.Product, error) {
	out, err := s.products.All(ctx)
	if err != nil {
		return nil, domain.Internal("list products", err)
	}
	return out, nil
}

// GroupedByCategory returns at most the top 20 products per main category,
// rating-sorted, for the store front.
func (s *CatalogSvc) GroupedByCategory(ctx context.Context) (map[string][]domain.Product, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, domain.Internal("list products", err)
	}
	grouped := map[string][]domain.Product{}
	for _, p := range all {
		grouped[p.MainCategory] = append(grouped[p.MainCategory], p)
	}
	for cat, ps := range grouped {
		sort.Slice(ps, func(i, j int) bool {
			if ps[i].NumRatings != ps[j].NumRatings {
				return ps[i].NumRatings > ps[j].NumRatings
			}
			return ps[i].AverageRating > ps[j].AverageRating
		})
		if len(ps) > 20 {
			ps = ps[:20]
		}
		grouped[cat] = ps
	}
	return grouped, nil
}

func (s *CatalogSvc) ByCategory(ctx context.Context, encoded string) ([]domain.Product, error) {
	out, err := s.products.ByCategoryEncoded(ctx, encoded)
	if err != nil {
		return nil, domain.Internal("list products", err)
	}
	if len(out) == 0 {
		return nil, domain.NotFound("no products found for this category")
	}
	return out, nil
}

func (s *CatalogSvc) Search(ctx context.Context, query string) ([]domain.Product, error) {
	out, err := s.products.SearchByName(ctx, query)
	if err != nil {
		return nil, domain.Internal("search products", err)
	}
	return out, nil
}

func (s *CatalogSvc) HighestRated(ctx context.Context) ([]domain.Product, error) {
	out, err := s.products.HighestRated(ctx, 50)
	if err != nil {
		return nil, domain.Internal("list products", err)
	}
	return out, nil
}

func (s *CatalogSvc) Trending(ctx context.Context, page, perPage int) ([]domain.Product, int64, error) {
	out, total, err := s.products.Trending(ctx, page, perPage)
	if err != nil {
		return nil, 0, domain.Internal("list products", err)
	}
	return out, total, nil
}

func (s *CatalogSvc) Categories(ctx context.Context) ([]string, error) {
	out, err := s.products.Categories(ctx)
	if err != nil {
		return nil, domain.Internal("list categories", err)
	}
	return out, nil
}

// HomePicks asks the recommendation service for a ranked product list and
// falls back to the highest-rated products when it has nothing to say.
func (s *CatalogSvc) HomePicks(ctx context.Context, userID uint) ([]domain.Product, error) {
	ids, err := s.recommend.HomePicks(ctx, userID)
	if err != nil {
		log.Printf("[catalog] recommend unavailable: %v", err)
	}
	if len(ids) == 0 {
		return s.HighestRated(ctx)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, domain.Internal("load products", err)
	}
	// keep the recommender's ranking
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.Slice(products, func(i, j int) bool { return rank[products[i].ID] < rank[products[j].ID] })
	return products, nil
}

// RelatedTo mirrors HomePicks for a product-detail page.
func (s *CatalogSvc) RelatedTo(ctx context.Context, productID string) ([]domain.Product, error) {
	ids, err := s.recommend.RelatedTo(ctx, productID)
	if err != nil {
		log.Printf("[catalog] recommend unavailable: %v", err)
	}
	if len(ids) == 0 {
		return s.HighestRated(ctx)
	}
	products, err := s.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, domain.Internal("load products", err)
	}
	return products, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"dental-store/config"
	"dental-store/libs"
	"dental-store/models"

	"github.com/redis/go-redis/v9"
)

const ProductsPageSize = 12

const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortNameAsc   = "name"
)

const (
	productsQuery = `*[_type == "product"]{
		_id, name, title, slug, description, price, image, images,
		category->{_id, name, title, slug},
		subcategory->{_id, name, title, slug},
		colors[]->{_id, name, slug},
		materials[]->{_id, name, slug},
		tipShapes[]->{_id, name, slug},
		sku, productCode, featured, tags, rating
	}`
	categoriesQuery = `*[_type == "category"]{
		_id, name, title, slug, image,
		"productCount": count(*[_type == "product" && references(^._id)]),
		"subcategories": *[_type == "subcategory" && parent._ref == ^._id]{
			_id, name, title, slug, image,
			"productCount": count(*[_type == "product" && references(^._id)])
		}
	}`

	productsCacheKey   = "catalog_products"
	categoriesCacheKey = "catalog_categories"
)

// CatalogService fetches the full catalog from the CMS once per cache window
// and serves filtered views of the in-memory list.
type CatalogService struct {
	sanity *libs.SanityClient
	redis  *redis.Client
}

func NewCatalogService(sanity *libs.SanityClient, redisClient *redis.Client) *CatalogService {
	return &CatalogService{sanity: sanity, redis: redisClient}
}

// Products returns the full normalized product list, Redis-cached.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if s.cacheGet(ctx, productsCacheKey, &products) {
		return products, nil
	}

	var raw []models.SanityProduct
	if err := s.sanity.QueryInto(ctx, productsQuery, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products = make([]models.Product, 0, len(raw))
	for _, doc := range raw {
		products = append(products, models.NormalizeProduct(doc, s.sanity.ProjectID, s.sanity.Dataset))
	}

	s.cacheSet(ctx, productsCacheKey, products)
	return products, nil
}

// ProductByID looks up a product by document id or slug.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id || (products[i].Slug != "" && products[i].Slug == id) {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Categories returns the normalized category tree, Redis-cached.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if s.cacheGet(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	var raw []models.SanityCategory
	if err := s.sanity.QueryInto(ctx, categoriesQuery, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories = make([]models.Category, 0, len(raw))
	for _, doc := range raw {
		categories = append(categories, models.NormalizeCategory(doc, s.sanity.ProjectID, s.sanity.Dataset))
	}

	s.cacheSet(ctx, categoriesCacheKey, categories)
	return categories, nil
}

// InvalidateCache drops every catalog_* key.
func (s *CatalogService) InvalidateCache() {
	if s.redis == nil {
		return
	}
	ctx := context.Background()
	iter := s.redis.Scan(ctx, 0, "catalog_*", 0).Iterator()
	for iter.Next(ctx) {
		s.redis.Del(ctx, iter.Val())
	}
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	cached, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		log.Printf("Failed to parse cached %s: %v", key, err)
		return false
	}
	return true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	blob, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.redis.Set(ctx, key, blob, config.AppConfig.CatalogCacheTTL)
}

// FilterProducts applies the filter pipeline to the full product list and
// returns the ordered working set before pagination. The narrowing stages
// (price, material, category, subcategory, rating) are independent
// predicates, so their relative order never changes the result.
func FilterProducts(products []models.Product, params models.FilterParams) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, params.Search) {
			continue
		}
		if !matchesPrice(p, params.MinPrice, params.MaxPrice) {
			continue
		}
		if !matchesMaterial(p, params.Materials) {
			continue
		}
		if !matchesCategory(p.CategoryID, p.CategorySlug, params.Categories) {
			continue
		}
		if !matchesCategory(p.SubcategoryID, p.SubcategorySlug, params.Subcategories) {
			continue
		}
		if p.Rating < params.MinRating {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, params.Sort)
	return result
}

// Paginate slices one fixed-size page out of the filtered set and returns
// the metadata for it.
func Paginate(products []models.Product, page int) ([]models.Product, models.MetaData) {
	if page < 1 {
		page = 1
	}

	total := len(products)
	totalPages := (total + ProductsPageSize - 1) / ProductsPageSize

	start := (page - 1) * ProductsPageSize
	if start > total {
		start = total
	}
	end := start + ProductsPageSize
	if end > total {
		end = total
	}

	return products[start:end], models.MetaData{
		Page:       page,
		Limit:      ProductsPageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// matchesSearch does a case-insensitive substring match against the name,
// the description, and every tag. An empty query matches everything.
func matchesSearch(p models.Product, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// matchesPrice keeps products inside the inclusive [min, max] range. A
// product without a price is excluded whenever either bound is set.
func matchesPrice(p models.Product, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if p.Price == nil {
		return false
	}
	if min != nil && *p.Price < *min {
		return false
	}
	if max != nil && *p.Price > *max {
		return false
	}
	return true
}

func matchesMaterial(p models.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, m := range p.Materials {
			if m.ID == want || strings.EqualFold(m.Name, want) {
				return true
			}
		}
	}
	return false
}

// matchesCategory accepts either document ids or slugs in the selected set,
// since navigation entry points mix the two.
func matchesCategory(id, slug string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		if want == "" {
			continue
		}
		if want == id || (slug != "" && want == slug) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, order string) {
	switch order {
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		// Lexicographic id descending approximates recency; document ids
		// are not true timestamps.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	default:
		// Relevance: stable, keeps the incoming order.
	}
}

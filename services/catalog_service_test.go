package services

import (
	"fmt"
	"testing"

	"dental-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []models.Product {
	// 20 products spread over two categories, three materials, prices 5..100,
	// with a couple of quote-only (nil price) entries.
	products := make([]models.Product, 0, 20)
	materials := []models.VariantOption{
		{ID: "mat-steel", Name: "Stainless Steel"},
		{ID: "mat-titanium", Name: "Titanium"},
		{ID: "mat-carbide", Name: "Tungsten Carbide"},
	}
	for i := 0; i < 20; i++ {
		p := models.Product{
			ID:     fmt.Sprintf("prod-%02d", i),
			Name:   fmt.Sprintf("Instrument %02d", i),
			Slug:   fmt.Sprintf("instrument-%02d", i),
			Rating: float64(i % 6),
			Tags:   []string{"dental"},
		}
		if i%2 == 0 {
			p.CategoryID = "cat-surgical"
			p.CategorySlug = "surgical"
		} else {
			p.CategoryID = "cat-diagnostic"
			p.CategorySlug = "diagnostic"
		}
		if i%5 == 0 {
			p.SubcategoryID = "sub-extraction"
			p.SubcategorySlug = "extraction"
		}
		if i == 3 || i == 17 {
			// quote-only, no price
		} else {
			v := float64(5 * (i + 1))
			p.Price = &v
		}
		p.Materials = []models.VariantOption{materials[i%3]}
		if i == 7 {
			p.Name = "Periodontal Scaler"
			p.Description = "Double-ended scaler for supragingival calculus"
			p.Tags = append(p.Tags, "hygiene")
		}
		products = append(products, p)
	}
	return products
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func idSet(products []models.Product) map[string]bool {
	out := make(map[string]bool, len(products))
	for _, p := range products {
		out[p.ID] = true
	}
	return out
}

func TestFilterSearchMatchesNameDescriptionAndTags(t *testing.T) {
	products := fixtureProducts()

	byName := FilterProducts(products, models.FilterParams{Search: "periodontal"})
	require.Len(t, byName, 1)
	assert.Equal(t, "prod-07", byName[0].ID)

	byDescription := FilterProducts(products, models.FilterParams{Search: "CALCULUS"})
	require.Len(t, byDescription, 1)

	byTag := FilterProducts(products, models.FilterParams{Search: "hygiene"})
	require.Len(t, byTag, 1)

	all := FilterProducts(products, models.FilterParams{Search: "  "})
	assert.Len(t, all, 20)
}

func TestFilterPriceRangeInclusiveAndExcludesUnpriced(t *testing.T) {
	products := fixtureProducts()
	min, max := 10.0, 50.0

	got := FilterProducts(products, models.FilterParams{MinPrice: &min, MaxPrice: &max})
	for _, p := range got {
		require.NotNil(t, p.Price)
		assert.GreaterOrEqual(t, *p.Price, min)
		assert.LessOrEqual(t, *p.Price, max)
	}
	// prod-01 (10) and prod-09 (50) sit exactly on the bounds.
	set := idSet(got)
	assert.True(t, set["prod-01"])
	assert.True(t, set["prod-09"])
	assert.False(t, set["prod-03"]) // no price
}

func TestFilterMaterialAndCategory(t *testing.T) {
	products := fixtureProducts()

	byMaterialID := FilterProducts(products, models.FilterParams{Materials: []string{"mat-titanium"}})
	byMaterialName := FilterProducts(products, models.FilterParams{Materials: []string{"titanium"}})
	assert.Equal(t, ids(byMaterialID), ids(byMaterialName))
	assert.NotEmpty(t, byMaterialID)

	byCategoryID := FilterProducts(products, models.FilterParams{Categories: []string{"cat-surgical"}})
	byCategorySlug := FilterProducts(products, models.FilterParams{Categories: []string{"surgical"}})
	assert.Equal(t, ids(byCategoryID), ids(byCategorySlug))
	assert.Len(t, byCategoryID, 10)

	bySubcategory := FilterProducts(products, models.FilterParams{Subcategories: []string{"extraction"}})
	assert.Len(t, bySubcategory, 4)
}

func TestFilterRating(t *testing.T) {
	products := fixtureProducts()

	got := FilterProducts(products, models.FilterParams{MinRating: 4})
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}

	all := FilterProducts(products, models.FilterParams{MinRating: 0})
	assert.Len(t, all, 20)
}

// The narrowing stages are independent predicates: composing them one at a
// time, in any order, must land on the same final set as one combined pass.
func TestFilterStagesCommute(t *testing.T) {
	products := fixtureProducts()
	min, max := 10.0, 80.0

	combined := FilterProducts(products, models.FilterParams{
		MinPrice:   &min,
		MaxPrice:   &max,
		Materials:  []string{"mat-steel"},
		Categories: []string{"surgical"},
		MinRating:  2,
	})

	priceFirst := FilterProducts(products, models.FilterParams{MinPrice: &min, MaxPrice: &max})
	priceFirst = FilterProducts(priceFirst, models.FilterParams{Materials: []string{"mat-steel"}})
	priceFirst = FilterProducts(priceFirst, models.FilterParams{Categories: []string{"surgical"}})
	priceFirst = FilterProducts(priceFirst, models.FilterParams{MinRating: 2})

	ratingFirst := FilterProducts(products, models.FilterParams{MinRating: 2})
	ratingFirst = FilterProducts(ratingFirst, models.FilterParams{Categories: []string{"surgical"}})
	ratingFirst = FilterProducts(ratingFirst, models.FilterParams{Materials: []string{"mat-steel"}})
	ratingFirst = FilterProducts(ratingFirst, models.FilterParams{MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, idSet(combined), idSet(priceFirst))
	assert.Equal(t, idSet(combined), idSet(ratingFirst))
}

func TestSortVariantsKeepSameMemberSet(t *testing.T) {
	products := fixtureProducts()
	min, max := 10.0, 50.0

	base := models.FilterParams{MinPrice: &min, MaxPrice: &max}

	byName := base
	byName.Sort = SortNameAsc
	byNewest := base
	byNewest.Sort = SortNewest

	nameSorted := FilterProducts(products, byName)
	newestSorted := FilterProducts(products, byNewest)

	assert.Equal(t, idSet(nameSorted), idSet(newestSorted))
	assert.NotEqual(t, ids(nameSorted), ids(newestSorted))
}

func TestSortOrders(t *testing.T) {
	products := fixtureProducts()

	byRating := FilterProducts(products, models.FilterParams{Sort: SortRating})
	for i := 1; i < len(byRating); i++ {
		assert.GreaterOrEqual(t, byRating[i-1].Rating, byRating[i].Rating)
	}

	byNewest := FilterProducts(products, models.FilterParams{Sort: SortNewest})
	assert.Equal(t, "prod-19", byNewest[0].ID)

	relevance := FilterProducts(products, models.FilterParams{})
	assert.Equal(t, ids(products), ids(relevance))
}

func TestPaginateFixedPageSize(t *testing.T) {
	products := fixtureProducts()

	page1, meta := Paginate(products, 1)
	assert.Len(t, page1, ProductsPageSize)
	assert.Equal(t, 20, meta.TotalItems)
	assert.Equal(t, 2, meta.TotalPages)

	page2, meta := Paginate(products, 2)
	assert.Len(t, page2, 8)
	assert.Equal(t, 2, meta.Page)

	// Out-of-range pages return an empty slice, not an error.
	page9, _ := Paginate(products, 9)
	assert.Empty(t, page9)

	again, _ := Paginate(products, 1)
	assert.Equal(t, ids(page1), ids(again))
}

func TestFilterMissingFieldsDoNotMatch(t *testing.T) {
	bare := []models.Product{{ID: "prod-x"}}
	min := 1.0

	assert.Empty(t, FilterProducts(bare, models.FilterParams{MinPrice: &min}))
	assert.Empty(t, FilterProducts(bare, models.FilterParams{Materials: []string{"mat-steel"}}))
	assert.Empty(t, FilterProducts(bare, models.FilterParams{Categories: []string{"surgical"}}))
	assert.Len(t, FilterProducts(bare, models.FilterParams{Search: ""}), 1)
}

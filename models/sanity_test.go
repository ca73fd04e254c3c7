package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitySlugAcceptsStringAndObject(t *testing.T) {
	var s SanitySlug
	require.NoError(t, json.Unmarshal([]byte(`"periodontal-scaler"`), &s))
	assert.Equal(t, "periodontal-scaler", s.Current)

	require.NoError(t, json.Unmarshal([]byte(`{"current":"bone-file"}`), &s))
	assert.Equal(t, "bone-file", s.Current)

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, "", s.Current)
}

func TestSanityRefStringOrObject(t *testing.T) {
	var legacy SanityRef
	require.NoError(t, json.Unmarshal([]byte(`"Stainless Steel"`), &legacy))
	assert.Equal(t, "Stainless Steel", legacy.Name())
	assert.Equal(t, "Stainless Steel", legacy.Key())
	assert.Empty(t, legacy.ID())

	var current SanityRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"mat-1","name":"Titanium","slug":{"current":"titanium"}}`), &current))
	assert.Equal(t, "mat-1", current.ID())
	assert.Equal(t, "Titanium", current.Name())
	assert.Equal(t, "titanium", current.Slug())
	assert.Equal(t, "mat-1", current.Key())

	var ref SanityRef
	require.NoError(t, json.Unmarshal([]byte(`{"_ref":"cat-7"}`), &ref))
	assert.Equal(t, "cat-7", ref.Key())

	var titled SanityRef
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Surgical"}`), &titled))
	assert.Equal(t, "Surgical", titled.Name())
}

func TestTextValueFlattensBlocks(t *testing.T) {
	var plain TextValue
	require.NoError(t, json.Unmarshal([]byte(`"A plain description"`), &plain))
	assert.Equal(t, "A plain description", plain.String())

	blocks := `[
		{"_type":"block","children":[{"text":"First"},{"text":"line"}]},
		{"_type":"block","children":[{"text":"Second line"}]}
	]`
	var rich TextValue
	require.NoError(t, json.Unmarshal([]byte(blocks), &rich))
	assert.Equal(t, "First line\nSecond line", rich.String())

	var named TextValue
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Explorer"}`), &named))
	assert.Equal(t, "Explorer", named.String())

	var empty TextValue
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.Equal(t, "", empty.String())
}

func TestSanityImageURLResolution(t *testing.T) {
	var direct SanityImage
	require.NoError(t, json.Unmarshal([]byte(`"https://example.com/pic.jpg"`), &direct))
	assert.Equal(t, "https://example.com/pic.jpg", direct.URL("proj", "production"))

	var wrapped SanityImage
	require.NoError(t, json.Unmarshal([]byte(`{"asset":{"_ref":"image-abc123-2000x3000-jpg"}}`), &wrapped))
	assert.Equal(t,
		"https://cdn.sanity.io/images/proj/production/abc123-2000x3000.jpg",
		wrapped.URL("proj", "production"))

	var bogus SanityImage
	require.NoError(t, json.Unmarshal([]byte(`{"asset":{"_ref":"file-xyz"}}`), &bogus))
	assert.Equal(t, "", bogus.URL("proj", "production"))

	var missing SanityImage
	require.NoError(t, json.Unmarshal([]byte(`null`), &missing))
	assert.True(t, missing.IsZero())
}

func TestNormalizeProductLegacyAndCurrentShapes(t *testing.T) {
	currentDoc := `{
		"_id": "prod-1",
		"name": "Periodontal Scaler",
		"slug": {"current": "periodontal-scaler"},
		"description": [{"_type":"block","children":[{"text":"Double-ended scaler"}]}],
		"price": 24.5,
		"image": {"asset": {"_ref": "image-abc-100x100-png"}},
		"category": {"_id": "cat-1", "title": "Hygiene", "slug": {"current": "hygiene"}},
		"materials": [{"_id": "mat-1", "name": "Stainless Steel"}],
		"colors": ["Blue"],
		"sku": "PS-100",
		"featured": true,
		"tags": ["dental", "hygiene"],
		"rating": 4.5
	}`

	var raw SanityProduct
	require.NoError(t, json.Unmarshal([]byte(currentDoc), &raw))

	p := NormalizeProduct(raw, "proj", "production")
	assert.Equal(t, "prod-1", p.ID)
	assert.Equal(t, "Periodontal Scaler", p.Name)
	assert.Equal(t, "periodontal-scaler", p.Slug)
	assert.Equal(t, "Double-ended scaler", p.Description)
	require.NotNil(t, p.Price)
	assert.InDelta(t, 24.5, *p.Price, 1e-9)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "cat-1", p.CategoryID)
	assert.Equal(t, "hygiene", p.CategorySlug)
	require.Len(t, p.Materials, 1)
	assert.Equal(t, "mat-1", p.Materials[0].ID)
	require.Len(t, p.Colors, 1)
	assert.Equal(t, "Blue", p.Colors[0].Name)
	assert.True(t, p.Featured)

	legacyDoc := `{
		"_id": "prod-2",
		"title": "Bone File",
		"description": "Straight bone file",
		"category": "Surgical",
		"image": "https://example.com/bone-file.jpg"
	}`

	var legacy SanityProduct
	require.NoError(t, json.Unmarshal([]byte(legacyDoc), &legacy))

	lp := NormalizeProduct(legacy, "proj", "production")
	assert.Equal(t, "Bone File", lp.Name)
	assert.Equal(t, "Straight bone file", lp.Description)
	assert.Nil(t, lp.Price)
	assert.Equal(t, "Surgical", lp.CategoryID)
	assert.Equal(t, []string{"https://example.com/bone-file.jpg"}, lp.Images)
}

func TestNormalizeCategoryBuildsSubcategoryParents(t *testing.T) {
	doc := `{
		"_id": "cat-1",
		"title": "Surgical",
		"slug": {"current": "surgical"},
		"productCount": 12,
		"subcategories": [
			{"_id": "sub-1", "title": "Extraction", "slug": {"current": "extraction"}, "productCount": 4}
		]
	}`

	var raw SanityCategory
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))

	c := NormalizeCategory(raw, "proj", "production")
	assert.Equal(t, "Surgical", c.Title)
	assert.Equal(t, 12, c.ProductCount)
	require.Len(t, c.Subcategories, 1)
	assert.Equal(t, "cat-1", c.Subcategories[0].ParentCategoryID)
	assert.Equal(t, "extraction", c.Subcategories[0].Slug)
}

func TestURLBuildersPreferSlug(t *testing.T) {
	withSlug := Product{ID: "prod-1", Slug: "periodontal-scaler"}
	assert.Equal(t, "/products/periodontal-scaler", ProductURL(withSlug))

	withoutSlug := Product{ID: "prod-2"}
	assert.Equal(t, "/products/prod-2", ProductURL(withoutSlug))

	assert.Equal(t, "/categories/surgical", CategoryURL(Category{ID: "cat-1", Slug: "surgical"}))
	assert.Equal(t, "/categories/cat-1", CategoryURL(Category{ID: "cat-1"}))
	assert.Equal(t, "/subcategories/sub-1", SubcategoryURL(Subcategory{ID: "sub-1"}))
}

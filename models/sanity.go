package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Raw CMS document shapes and the normalization layer that flattens them into
// the Product/Category types the handlers consume. Legacy documents carry
// plain strings where current ones carry reference objects, rich-text block
// arrays, or image-asset wrappers; every union type here decodes both without
// erroring, and every extractor treats missing input as empty.

// SanitySlug accepts either a plain string or the {"current": "..."} wrapper.
type SanitySlug struct {
	Current string
}

func (s *SanitySlug) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Current = str
		return nil
	}
	var obj struct {
		Current string `json:"current"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		s.Current = obj.Current
		return nil
	}
	s.Current = ""
	return nil
}

// SanityRef is the string-or-object union for color/material/category style
// fields: a legacy document stores a bare name string, a current one stores a
// reference or inline object. It normalizes to a canonical id + display name.
type SanityRef struct {
	id   string
	name string
	slug string
}

func (r *SanityRef) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		r.name = str
		return nil
	}
	var obj struct {
		ID    string     `json:"_id"`
		Ref   string     `json:"_ref"`
		Name  string     `json:"name"`
		Title string     `json:"title"`
		Slug  SanitySlug `json:"slug"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		r.id = obj.ID
		if r.id == "" {
			r.id = obj.Ref
		}
		r.name = obj.Name
		if r.name == "" {
			r.name = obj.Title
		}
		r.slug = obj.Slug.Current
		return nil
	}
	return nil
}

func (r SanityRef) ID() string   { return r.id }
func (r SanityRef) Name() string { return r.name }
func (r SanityRef) Slug() string { return r.slug }

// Key returns the best stable identifier: the document id when present,
// then the slug, then the legacy name string.
func (r SanityRef) Key() string {
	if r.id != "" {
		return r.id
	}
	if r.slug != "" {
		return r.slug
	}
	return r.name
}

func (r SanityRef) IsZero() bool { return r.id == "" && r.name == "" && r.slug == "" }

// Option converts the reference into the flat variant shape.
func (r SanityRef) Option() VariantOption {
	return VariantOption{ID: r.Key(), Name: r.Name()}
}

// TextValue accepts a plain string, an object carrying name/title, or a
// portable-text block array, and flattens all of them to one string. Block
// children are joined with spaces, blocks with newlines.
type TextValue struct {
	Value string
}

func (t *TextValue) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		t.Value = str
		return nil
	}

	var blocks []struct {
		Type     string `json:"_type"`
		Children []struct {
			Text string `json:"text"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &blocks); err == nil {
		var lines []string
		for _, b := range blocks {
			var spans []string
			for _, c := range b.Children {
				if c.Text != "" {
					spans = append(spans, c.Text)
				}
			}
			if len(spans) > 0 {
				lines = append(lines, strings.Join(spans, " "))
			}
		}
		t.Value = strings.Join(lines, "\n")
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.Value = obj.Name
		if t.Value == "" {
			t.Value = obj.Title
		}
		return nil
	}

	t.Value = ""
	return nil
}

func (t TextValue) String() string { return t.Value }

// SanityImage accepts a bare URL string, an asset object, or the
// {"asset": {...}} wrapper.
type SanityImage struct {
	url string
	ref string
}

func (img *SanityImage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		img.url = str
		return nil
	}
	var obj struct {
		URL   string `json:"url"`
		Ref   string `json:"_ref"`
		Asset struct {
			URL string `json:"url"`
			Ref string `json:"_ref"`
		} `json:"asset"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		img.url = obj.URL
		if img.url == "" {
			img.url = obj.Asset.URL
		}
		img.ref = obj.Ref
		if img.ref == "" {
			img.ref = obj.Asset.Ref
		}
		return nil
	}
	return nil
}

// URL resolves the image to a CDN URL. Asset references of the form
// image-<id>-<dims>-<ext> expand to cdn.sanity.io paths; anything
// unresolvable yields "".
func (img SanityImage) URL(project, dataset string) string {
	if img.url != "" {
		return img.url
	}
	if img.ref == "" {
		return ""
	}
	parts := strings.Split(img.ref, "-")
	if len(parts) < 4 || parts[0] != "image" {
		return ""
	}
	assetID := strings.Join(parts[1:len(parts)-1], "-")
	ext := parts[len(parts)-1]
	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s.%s", project, dataset, assetID, ext)
}

func (img SanityImage) IsZero() bool { return img.url == "" && img.ref == "" }

// SanityProduct is the raw product document as returned by the CMS query API.
type SanityProduct struct {
	ID          string        `json:"_id"`
	Name        TextValue     `json:"name"`
	Title       TextValue     `json:"title"`
	Slug        SanitySlug    `json:"slug"`
	Description TextValue     `json:"description"`
	Price       *float64      `json:"price"`
	Image       SanityImage   `json:"image"`
	Images      []SanityImage `json:"images"`
	Category    SanityRef     `json:"category"`
	Subcategory SanityRef     `json:"subcategory"`
	Colors      []SanityRef   `json:"colors"`
	Materials   []SanityRef   `json:"materials"`
	TipShapes   []SanityRef   `json:"tipShapes"`
	SKU         string        `json:"sku"`
	ProductCode string        `json:"productCode"`
	Featured    bool          `json:"featured"`
	Tags        []string      `json:"tags"`
	Rating      float64       `json:"rating"`
}

// SanityCategory is the raw category or subcategory document.
type SanityCategory struct {
	ID           string           `json:"_id"`
	Title        TextValue        `json:"title"`
	Name         TextValue        `json:"name"`
	Slug         SanitySlug       `json:"slug"`
	Image        SanityImage      `json:"image"`
	ProductCount int              `json:"productCount"`
	Parent       SanityRef        `json:"parent"`
	Children     []SanityCategory `json:"subcategories"`
}

// DisplayName returns the product's display name from either the raw or the
// flattened shape; legacy documents use title where current ones use name.
func (p *SanityProduct) DisplayName() string {
	if p.Name.Value != "" {
		return p.Name.Value
	}
	return p.Title.Value
}

func (c *SanityCategory) DisplayName() string {
	if c.Title.Value != "" {
		return c.Title.Value
	}
	return c.Name.Value
}

// NormalizeProduct flattens a raw CMS product into the shape the filter
// engine and handlers consume.
func NormalizeProduct(raw SanityProduct, project, dataset string) Product {
	p := Product{
		ID:          raw.ID,
		Name:        raw.DisplayName(),
		Slug:        raw.Slug.Current,
		Description: raw.Description.Value,
		Price:       raw.Price,
		SKU:         raw.SKU,
		ProductCode: raw.ProductCode,
		Featured:    raw.Featured,
		Tags:        raw.Tags,
		Rating:      raw.Rating,
	}

	if !raw.Image.IsZero() {
		if url := raw.Image.URL(project, dataset); url != "" {
			p.Images = append(p.Images, url)
		}
	}
	for _, img := range raw.Images {
		if url := img.URL(project, dataset); url != "" {
			p.Images = append(p.Images, url)
		}
	}

	p.CategoryID = raw.Category.Key()
	p.CategorySlug = raw.Category.Slug()
	p.SubcategoryID = raw.Subcategory.Key()
	p.SubcategorySlug = raw.Subcategory.Slug()

	for _, c := range raw.Colors {
		p.Colors = append(p.Colors, c.Option())
	}
	for _, m := range raw.Materials {
		p.Materials = append(p.Materials, m.Option())
	}
	for _, t := range raw.TipShapes {
		p.TipShapes = append(p.TipShapes, t.Option())
	}

	return p
}

// NormalizeCategory flattens a raw category document and its children.
func NormalizeCategory(raw SanityCategory, project, dataset string) Category {
	c := Category{
		ID:           raw.ID,
		Title:        raw.DisplayName(),
		Slug:         raw.Slug.Current,
		ImageURL:     raw.Image.URL(project, dataset),
		ProductCount: raw.ProductCount,
	}
	for _, child := range raw.Children {
		c.Subcategories = append(c.Subcategories, Subcategory{
			ID:               child.ID,
			Title:            child.DisplayName(),
			Slug:             child.Slug.Current,
			ImageURL:         child.Image.URL(project, dataset),
			ProductCount:     child.ProductCount,
			ParentCategoryID: raw.ID,
		})
	}
	return c
}

// URL builders. Slugs are the canonical link identifier; the document id is
// the fallback for records that never had a slug published.

func ProductURL(p Product) string {
	return "/products/" + slugOrID(p.Slug, p.ID)
}

func CategoryURL(c Category) string {
	return "/categories/" + slugOrID(c.Slug, c.ID)
}

func SubcategoryURL(s Subcategory) string {
	return "/subcategories/" + slugOrID(s.Slug, s.ID)
}

func slugOrID(slug, id string) string {
	if slug != "" {
		return slug
	}
	return id
}

package controllers

import (
	"log"

	"dental-store/models"
	"dental-store/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts godoc
// @Summary List products
// @Description Filter, sort, and paginate the catalog; the view is a deterministic function of the query string
// @Tags Products
// @Produce json
// @Param search query string false "Search in name, description, and tags"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param material query []string false "Filter by material id or name"
// @Param category query []string false "Filter by category id or slug"
// @Param subcategory query []string false "Filter by subcategory id or slug"
// @Param min_rating query number false "Minimum rating"
// @Param sort query string false "Sort order" Enums(relevance, rating, newest, name)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginationResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	var params models.FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid filter parameters", Error: err.Error()})
		return
	}

	products, err := ctrl.catalog.Products(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch products: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve products"})
		return
	}

	filtered := services.FilterProducts(products, params)
	pageItems, meta := services.Paginate(filtered, params.Page)

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    pageItems,
		Meta:    meta,
	})
}

// GetProductByID godoc
// @Summary Get product
// @Description Get product details by document id or slug
// @Tags Products
// @Produce json
// @Param id path string true "Product ID or slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Failed to fetch product: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve product"})
		return
	}
	if product == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// GetCategories godoc
// @Summary List categories
// @Description Get the category tree with product counts
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve categories"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// InvalidateCache godoc
// @Summary Invalidate catalog cache
// @Description Drop the cached CMS product and category lists (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/cache/invalidate [post]
func (ctrl *ProductController) InvalidateCache(c *gin.Context) {
	ctrl.catalog.InvalidateCache()
	c.JSON(200, models.Response{Success: true, Message: "Catalog cache invalidated"})
}

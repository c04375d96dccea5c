package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"pizza-pos/internal/apperr"
	"pizza-pos/internal/cart"
	"pizza-pos/internal/models"
	"pizza-pos/internal/service"
	"pizza-pos/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers for the POS terminal
type Handler struct {
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	coupons  *service.CouponService
	cart     *cart.Cart
	fallback bool
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *service.CatalogService,
	checkout *service.CheckoutService,
	coupons *service.CouponService,
	c *cart.Cart,
	fallback bool,
) *Handler {
	return &Handler{
		catalog:  catalog,
		checkout: checkout,
		coupons:  coupons,
		cart:     c,
		fallback: fallback,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.POST("/products", h.createProduct)
		v1.PUT("/products/:id", h.updateProduct)
		v1.DELETE("/products/:id", h.deleteProduct)

		v1.GET("/cart", h.getCart)
		v1.DELETE("/cart", h.clearCart)
		v1.POST("/cart/items", h.addCartItem)
		v1.PUT("/cart/items/:productId", h.setCartQuantity)
		v1.DELETE("/cart/items/:productId", h.removeCartItem)

		v1.POST("/checkout", h.checkoutOrder)
		v1.GET("/orders", h.listOrders)
		v1.GET("/orders/:id", h.getOrder)
		v1.POST("/orders/:id/receipt", h.printReceipt)

		v1.GET("/coupons", h.listCoupons)
		v1.POST("/coupons", h.createCoupon)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	mode := "connected"
	if h.fallback {
		mode = "fallback"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"mode":   mode,
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// respondError maps an application error to an HTTP response. No error is
// fatal; every failure becomes a message the terminal can display.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperr.From(err); ok {
		c.JSON(appErr.StatusCode, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal error",
		"code":  apperr.CodeInternal,
	})
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) createProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	product.ID = id

	updated, err := h.catalog.Update(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// cartView is the cart state returned after every cart operation, so the
// terminal always sees fresh lines and totals.
func (h *Handler) cartView() gin.H {
	return gin.H{
		"lines":  h.cart.Lines(),
		"totals": h.cart.ComputeTotals(),
	}
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

func (h *Handler) clearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.cartView())
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	for _, product := range products {
		if product.ID == req.ProductID {
			h.cart.AddItem(product)
			c.JSON(http.StatusOK, h.cartView())
			return
		}
	}
	respondError(c, apperr.NotFound("product not found"))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setCartQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.cart.SetQuantity(productID, req.Quantity)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *Handler) removeCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	h.cart.RemoveItem(productID)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *Handler) checkoutOrder(c *gin.Context) {
	// An empty body is a walk-in checkout with all defaults.
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.checkout.ListOrders())
}

func (h *Handler) getOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.checkout.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) printReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if err := h.checkout.PrintReceipt(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "printing"})
}

func (h *Handler) listCoupons(c *gin.Context) {
	coupons, err := h.coupons.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *Handler) createCoupon(c *gin.Context) {
	var draft models.CouponDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	coupon, err := h.coupons.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}

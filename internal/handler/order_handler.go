package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrderRequest はPOST /ordersのbody。
// 必須項目のキー有無を区別するため全部ポインタで受ける。
type CreateOrderRequest struct {
	ProductIDsQty     *string  `json:"product_ids_qty"`
	CartStatus        *string  `json:"cart_status"`
	CustomerID        *int64   `json:"customer_id"`
	DeliveryAddressID *int64   `json:"delivery_address_id"`
	PrescriptionID    *string  `json:"prescription_id"`
	AutoRefill        *int64   `json:"auto_refill"`
	CouponSavings     *float64 `json:"coupon_savings"`
	PaymentID         *string  `json:"payment_id"`
	PaymentSign       *string  `json:"payment_sign"`
	ShippingCharge    *float64 `json:"shipping_charge"`
	RzpOrderID        *string  `json:"rzp_order_id"`
	OrderTrackingID   *string  `json:"order_tracking_id"`
	CouponApplied     *string  `json:"coupon_applied"`
	DeliveryType      *string  `json:"delivery_type"`
}

// /orders, /orders/{cart_id} を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.list)
	e.POST("/orders", h.create)
	e.GET("/orders/:cart_id", h.detail)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		ProductIDsQty:     req.ProductIDsQty,
		CartStatus:        req.CartStatus,
		CustomerID:        req.CustomerID,
		DeliveryAddressID: req.DeliveryAddressID,
		PrescriptionID:    req.PrescriptionID,
		AutoRefill:        req.AutoRefill,
		CouponSavings:     req.CouponSavings,
		PaymentID:         req.PaymentID,
		PaymentSign:       req.PaymentSign,
		ShippingCharge:    req.ShippingCharge,
		RzpOrderID:        req.RzpOrderID,
		OrderTrackingID:   req.OrderTrackingID,
		CouponApplied:     req.CouponApplied,
		DeliveryType:      req.DeliveryType,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("cart_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid cart_id"})
	}

	out, err := h.uc.GetOrderDetail(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

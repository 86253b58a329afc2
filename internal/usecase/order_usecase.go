package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// usecaseに渡す部品（mainで実装を注入）
type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	auditRepo   repo.AuditLogRepository
	clock       Clock
	idGen       IDGenerator
	log         zerolog.Logger
}

// DI
func NewOrderUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	clock Clock,
	idGen IDGenerator,
	log zerolog.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		auditRepo:   auditRepo,
		clock:       clock,
		idGen:       idGen,
		log:         log,
	}
}

// OrderProductView はカタログで解決できた明細1件分。
type OrderProductView struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	SellingPrice float64 `json:"selling_price"`
	ImageURL     string  `json:"image_url"`
	Quantity     int64   `json:"quantity"`
}

// OrderView はカートをカタログ情報で肉付けした注文表現。
// DeliveryAddressID はNULL時の既定値がエンドポイントごとに違うため any で持つ
// （一覧は "", 単品取得は 0。既存クライアント互換のため揃えない）。
type OrderView struct {
	CartID            int64              `json:"cart_id"`
	Status            string             `json:"status"`
	CreatedDate       time.Time          `json:"created_date"`
	UpdatedDate       time.Time          `json:"updated_date"`
	TotalCartValue    float64            `json:"total_cart_value"`
	ShippingCharge    float64            `json:"shipping_charge"`
	CouponSavings     float64            `json:"coupon_savings"`
	AutoRefill        bool               `json:"auto_refill"`
	DeliveryType      string             `json:"delivery_type"`
	DeliveryAddressID any                `json:"delivery_address_id"`
	TotalItems        int64              `json:"total_items"`
	Products          []OrderProductView `json:"products"`
	TrackingID        *string            `json:"tracking_id"`
}

type OrdersOutput struct {
	Orders []OrderView `json:"orders"`
}

// CreateOrderInput はPOST /ordersの入力。
// 必須4項目はキーの有無を区別するためポインタで受ける。
type CreateOrderInput struct {
	ProductIDsQty     *string
	CartStatus        *string
	CustomerID        *int64
	DeliveryAddressID *int64

	PrescriptionID  *string
	AutoRefill      *int64
	CouponSavings   *float64
	PaymentID       *string
	PaymentSign     *string
	ShippingCharge  *float64
	RzpOrderID      *string
	OrderTrackingID *string
	CouponApplied   *string
	DeliveryType    *string
}

type CreateOrderOutput struct {
	Message string `json:"message"`
	CartID  int64  `json:"cart_id"`
}

// ListOrders はactive以外のカートをすべて注文として返す。
func (u *OrderUsecase) ListOrders(ctx context.Context) (OrdersOutput, error) {
	carts, err := u.cartRepo.ListPlaced(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("list orders: cart query failed")
		return OrdersOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders := make([]OrderView, 0, len(carts))
	for _, cart := range carts {
		view, err := u.expand(ctx, cart, "")
		if err != nil {
			return OrdersOutput{}, err
		}
		orders = append(orders, view)
	}

	return OrdersOutput{Orders: orders}, nil
}

// GetOrderDetail はcart_idで1件取得する。
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, cartID int64) (OrderView, error) {
	if cartID <= 0 {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return OrderView{}, NewHTTPError(http.StatusNotFound, "Cart not found")
	}
	if err != nil {
		u.log.Error().Err(err).Int64("cart_id", cartID).Msg("get order: cart query failed")
		return OrderView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//一覧と違い、住所IDのNULL既定値は0（既存クライアント互換）
	return u.expand(ctx, cart, 0)
}

// CreateOrder は注文を1件作成する。
// 商品が1つでも解決できなければ何も保存しない（全か無か）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if in.ProductIDsQty == nil || in.CartStatus == nil || in.CustomerID == nil || in.DeliveryAddressID == nil {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	items, droppedSegs := model.DecodeLineItems(*in.ProductIDsQty)
	if len(items) == 0 {
		//空文字も全滅も区別せず形式エラー扱い
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest,
			`Invalid product_ids_qty format. Expected format "product_id:qty;..."`)
	}

	//重複を除いてまとめて解決する
	productIDs := distinctProductIDs(items)

	products, err := u.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		u.log.Error().Err(err).Msg("create order: product query failed")
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priceByID := make(map[int64]float64, len(products))
	for _, p := range products {
		priceByID[p.ProductID] = p.SellingPrice
	}

	var missing []int64
	for _, id := range productIDs {
		if _, ok := priceByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		u.audit(ctx, 0, model.AuditActionUnknownProducts, fmt.Sprintf("%v", missing))
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid product_id(s): %v", missing))
	}

	//現在の販売価格で合計を出す（丸めない）
	var total float64
	for _, it := range items {
		total += priceByID[it.ProductID] * float64(it.Quantity)
	}

	now := u.clock.Now()
	cart := model.Cart{
		CartStatus:      *in.CartStatus,
		CartCreatedDate: now,
		CartUpdatedDate: now,
		//クライアントが送った文字列をそのまま保存する
		ProductIDsQty:     *in.ProductIDsQty,
		CustomerID:        *in.CustomerID,
		TotalCartValue:    total,
		DeliveryAddressID: in.DeliveryAddressID,
		PrescriptionID:    in.PrescriptionID,
		AutoRefill:        defaultInt(in.AutoRefill, 0),
		CouponSavings:     defaultFloat(in.CouponSavings, 0.0),
		PaymentID:         in.PaymentID,
		PaymentSign:       in.PaymentSign,
		ShippingCharge:    defaultFloat(in.ShippingCharge, 0.0),
		RzpOrderID:        in.RzpOrderID,
		OrderTrackingID:   in.OrderTrackingID,
		CouponApplied:     in.CouponApplied,
		DeliveryType:      in.DeliveryType,
	}

	cartID, err := u.cartRepo.Create(ctx, cart)
	if err != nil {
		u.log.Error().Err(err).Msg("create order: insert failed")
		return CreateOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//読み捨てたセグメントの痕跡を残す（作成自体は成功扱い）
	if len(droppedSegs) > 0 {
		u.audit(ctx, cartID, model.AuditActionSegmentDropped, strings.Join(droppedSegs, ";"))
	}

	return CreateOrderOutput{Message: "Order created successfully", CartID: cartID}, nil
}

// expand はカート1件をOrderViewへ展開する。
// カタログに無い商品は黙って除外する（total_itemsにも含めない）。
func (u *OrderUsecase) expand(ctx context.Context, cart model.Cart, addrFallback any) (OrderView, error) {
	items, dropped := model.DecodeLineItems(cart.ProductIDsQty)
	if len(dropped) > 0 {
		u.log.Warn().
			Int64("cart_id", cart.CartID).
			Strs("segments", dropped).
			Msg("dropped malformed line item segments")
	}

	products, err := u.productRepo.FindByIDs(ctx, distinctProductIDs(items))
	if err != nil {
		u.log.Error().Err(err).Int64("cart_id", cart.CartID).Msg("expand: product query failed")
		return OrderView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	views := make([]OrderProductView, 0, len(items))
	var totalItems int64
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			u.log.Warn().
				Int64("cart_id", cart.CartID).
				Int64("product_id", it.ProductID).
				Msg("line item references missing product")
			continue
		}
		views = append(views, OrderProductView{
			ProductID:    it.ProductID,
			Name:         p.Name,
			Price:        p.Price,
			SellingPrice: p.SellingPrice,
			ImageURL:     p.ImageURL,
			Quantity:     it.Quantity,
		})
		totalItems += it.Quantity
	}

	view := OrderView{
		CartID:            cart.CartID,
		Status:            cart.CartStatus,
		CreatedDate:       cart.CartCreatedDate,
		UpdatedDate:       cart.CartUpdatedDate,
		TotalCartValue:    cart.TotalCartValue,
		ShippingCharge:    floatOrZero(cart.ShippingCharge),
		CouponSavings:     floatOrZero(cart.CouponSavings),
		AutoRefill:        cart.AutoRefill != nil && *cart.AutoRefill != 0,
		DeliveryType:      stringOrEmpty(cart.DeliveryType),
		DeliveryAddressID: addrFallback,
		TotalItems:        totalItems,
		Products:          views,
		TrackingID:        cart.OrderTrackingID,
	}
	if cart.DeliveryAddressID != nil {
		view.DeliveryAddressID = *cart.DeliveryAddressID
	}

	return view, nil
}

// 監査ログはベストエフォート。失敗しても本処理は止めない。
func (u *OrderUsecase) audit(ctx context.Context, cartID int64, action model.AuditAction, detail string) {
	entry := model.AuditLog{
		EntryID:   u.idGen.NewID(),
		CartID:    cartID,
		Action:    action,
		Detail:    detail,
		CreatedAt: u.clock.Now(),
	}
	if err := u.auditRepo.Create(ctx, entry); err != nil {
		u.log.Error().Err(err).Str("action", string(action)).Msg("audit log write failed")
	}
}

// 出現順を保ったまま重複を除く
func distinctProductIDs(items []model.LineItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0.0
	}
	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func defaultInt(v *int64, def int64) *int64 {
	if v == nil {
		return &def
	}
	return v
}

func defaultFloat(v *float64, def float64) *float64 {
	if v == nil {
		return &def
	}
	return v
}

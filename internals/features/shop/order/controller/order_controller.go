package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartModel "gedungku_backend/internals/features/shop/cart/model"
	"gedungku_backend/internals/features/shop/order/model"
	orderService "gedungku_backend/internals/features/shop/order/service"
	userModel "gedungku_backend/internals/features/users/user/model"
	helper "gedungku_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// POST /api/orders
// Checkout: cart user → order + order_products + event PENDING, lalu cart dikosongkan.
// Seluruhnya dalam satu transaksi.
func (ctrl *OrderController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var order model.OrderModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cartItems []cartModel.CartItemModel
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cart is empty")
		}

		total := cartTotal(cartItems)

		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.DefaultShippingAddress == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Alamat pengiriman default belum diset")
		}
		var address userModel.AddressModel
		if err := tx.First(&address, "id = ?", *user.DefaultShippingAddress).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Alamat pengiriman default tidak ditemukan")
		}

		order = model.OrderModel{
			UserID:    userID,
			NetAmount: total,
			Address:   address.FormattedAddress(),
			Status:    model.OrderStatusPending,
		}
		for _, item := range cartItems {
			order.Products = append(order.Products, model.OrderProductModel{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		event := model.OrderEventModel{OrderID: order.ID, Status: model.OrderStatusPending}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&cartModel.CartItemModel{}).Error
	})
	if txErr != nil {
		var fiberErr *fiber.Error
		if errors.As(txErr, &fiberErr) {
			return helper.JsonError(c, fiberErr.Code, fiberErr.Message)
		}
		log.Printf("[ERROR] create order: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat order")
	}

	return helper.JsonCreated(c, "Create orders successfully", order)
}

// GET /api/orders
func (ctrl *OrderController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var orders []model.OrderModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil orders")
	}

	return helper.JsonOK(c, "Fetch all orders successfully", orders)
}

// GET /api/orders/:id
func (ctrl *OrderController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order model.OrderModel
	if err := ctrl.DB.
		Preload("Products").
		Preload("Events").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	return helper.JsonOK(c, "Fetch order successfully", order)
}

// PUT /api/orders/:id/cancel
func (ctrl *OrderController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order model.OrderModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			return err
		}
		order.Status = model.OrderStatusCancelled
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return tx.Create(&model.OrderEventModel{
			OrderID: order.ID,
			Status:  model.OrderStatusCancelled,
		}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan order")
	}

	return helper.JsonUpdated(c, "Cancelled order successfully", order)
}

// POST /api/orders/:id/pay
// Buat transaksi Snap midtrans untuk order PENDING milik user.
func (ctrl *OrderController) Pay(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var order model.OrderModel
	if err := ctrl.DB.
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}
	if order.Status != model.OrderStatusPending {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order tidak dalam status PENDING")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	payment, err := orderService.CreateSnapTransaction(ctrl.DB, order, user.Name, user.Email)
	if err != nil {
		log.Printf("[ERROR] midtrans snap: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat transaksi pembayaran")
	}

	return helper.JsonCreated(c, "Payment transaction created successfully", payment)
}

/* ==========================
   ADMIN
========================== */

// GET /api/a/orders?status=
func (ctrl *OrderController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 100)

	query := ctrl.DB.Model(&model.OrderModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung orders")
	}

	var orders []model.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil orders")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Fetch list all orders successfully", orders, &pagination)
}

// PUT /api/a/orders/:id/status
func (ctrl *OrderController) ChangeStatus(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	switch status {
	case model.OrderStatusPending, model.OrderStatusAccepted,
		model.OrderStatusOutForDelivery, model.OrderStatusDelivered,
		model.OrderStatusCancelled:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Status order tidak dikenal")
	}

	var order model.OrderModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return tx.Create(&model.OrderEventModel{OrderID: order.ID, Status: status}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status order")
	}

	return helper.JsonUpdated(c, "Update status order successfully", order)
}

// GET /api/a/users/:id/orders
func (ctrl *OrderController) ListUserOrders(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var orders []model.OrderModel
	if err := ctrl.DB.
		Where("user_id = ?", targetID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil orders")
	}

	return helper.JsonOK(c, "Fetch user orders successfully", orders)
}

// cartTotal menjumlahkan qty × harga seluruh isi cart.
func cartTotal(items []cartModel.CartItemModel) float64 {
	total := 0.0
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += float64(item.Quantity) * item.Product.Price
	}
	return total
}

package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/shop/order/model"
)

var snapClient snap.Client

// InitMidtrans dipanggil sekali di main setelah env dimuat.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	log.Println("✅ Midtrans Snap client siap.")
}

// CreateSnapTransaction membuat transaksi Snap untuk order dan menyimpan hasilnya.
func CreateSnapTransaction(db *gorm.DB, order model.OrderModel, customerName, customerEmail string) (*model.PaymentModel, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("ORDER-%d", order.ID),
			GrossAmt: int64(order.NetAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, midErr := snapClient.CreateTransaction(req)
	if midErr != nil {
		return nil, midErr
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		raw = []byte("{}")
	}

	payment := model.PaymentModel{
		OrderID:         order.ID,
		SnapToken:       resp.Token,
		RedirectURL:     resp.RedirectURL,
		GatewayResponse: raw,
	}
	if err := db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

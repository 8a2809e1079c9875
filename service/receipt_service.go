package service

import (
	"fmt"
	"strings"
	"time"

	"sketchtostitch-me/models"
)

// receiptTemplate is the fixed plain-text receipt layout
const receiptTemplate = `
SKETCHTOSTITCH ORDER RECEIPT
============================

Order Number: %s
Date: %s
Customer: %s
Email: %s

Items: %s
Total: $%d

Thank you for your order!
`

// BuildReceipt assembles the plain-text receipt for an order
func BuildReceipt(order *models.Order) string {
	items := "Custom Design"
	if len(order.Stickers) > 0 {
		names := make([]string, 0, len(order.Stickers))
		for _, sticker := range order.Stickers {
			names = append(names, sticker.Name)
		}
		items = strings.Join(names, ", ")
	}

	data := models.ReceiptData{
		OrderNumber:   order.ID,
		Date:          time.Now().Format("1/2/2006"),
		Items:         items,
		Total:         order.TotalPrice,
		CustomerName:  order.Name,
		CustomerEmail: order.Email,
	}

	return fmt.Sprintf(receiptTemplate,
		data.OrderNumber,
		data.Date,
		data.CustomerName,
		data.CustomerEmail,
		data.Items,
		data.Total,
	)
}

// ReceiptFileName returns the download file name for an order's receipt
func ReceiptFileName(order *models.Order) string {
	return fmt.Sprintf("receipt-%s.txt", order.ID)
}

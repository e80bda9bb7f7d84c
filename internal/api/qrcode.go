/*
Package api
File: qrcode.go
Description:
    QR code generation for token bundle invoices. The client shows the
    code so the payment platform can take over the actual purchase.
*/

package api

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(bundleID string) ([]byte, error)
}

type InvoiceQRGenerator struct {
	BaseURL string
}

func (g InvoiceQRGenerator) Generate(bundleID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/invoice?bundle=%s", g.BaseURL, bundleID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

package route

import qrcode "github.com/skip2/go-qrcode"

const qrSize = 256

// QRPNG renders a URL as a QR code PNG so a route built on a desktop can be
// opened on a phone's maps app.
func QRPNG(u string) ([]byte, error) {
	return qrcode.Encode(u, qrcode.Medium, qrSize)
}

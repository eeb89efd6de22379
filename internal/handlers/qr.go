package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// serveQR writes a PNG QR of an external ID, scanned at the gate to pull
// up the record on the check-in tablet.
func serveQR(w http.ResponseWriter, externalID string) {
	png, err := qrcode.Encode(externalID, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "qr encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

package service

// QRCodeService renders QR codes for share links.
type QRCodeService interface {
	// GenerateShareQR encodes url as a PNG image.
	GenerateShareQR(url string) ([]byte, error)
}

package service

// QRCodeService renders share links as PNG QR codes.
type QRCodeService interface {
	// ResultsURL is the public link to the results page.
	ResultsURL() string

	// GenerateLinkQR encodes url as a PNG.
	GenerateLinkQR(url string) ([]byte, error)
}

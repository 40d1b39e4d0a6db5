package qrcode

import (
	"net/url"
	"strings"

	"jild/config"
	"jild/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ResultsPath is the SPA route that shows a user's analysis results.
const ResultsPath = "/ai-recommendations"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	svc := &qrcodeService{size: 256, errorCorrectionLevel: qrcode.Medium}
	if cfg == nil {
		return svc
	}

	if cfg.Size > 0 {
		svc.size = cfg.Size
	}
	svc.errorCorrectionLevel = recoveryLevel(cfg.ErrorCorrectionLevel)
	svc.baseURL = strings.TrimRight(cfg.BaseURL, "/")

	return svc
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ResultsURL is the public link to the results page.
func (s *qrcodeService) ResultsURL() string {
	return s.baseURL + ResultsPath
}

// GenerateLinkQR encodes an absolute http(s) URL as a PNG.
func (s *qrcodeService) GenerateLinkQR(link string) ([]byte, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse link")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("link must be an absolute http(s) URL: %q", link)
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

package services

import (
	"context"
	"encoding/base64"
	"math"
	"strings"
	"time"

	apperrors "github.com/hardza1230/Wealth-Wallet/internal/errors"
	"github.com/hardza1230/Wealth-Wallet/internal/logger"
	"github.com/hardza1230/Wealth-Wallet/internal/models"
)

// captureService runs smart capture: parse unstructured input with the model,
// then append the result to the ledger. A failed parse appends nothing, so
// the store never sees a partially constructed transaction.
type captureService struct {
	parser       TransactionParser
	transactions TransactionServicer
}

// NewCaptureService creates a new CaptureServicer.
func NewCaptureService(parser TransactionParser, transactions TransactionServicer) CaptureServicer {
	return &captureService{parser: parser, transactions: transactions}
}

// Capture parses text and/or a base64-encoded JPEG image into a transaction
// and records it. At least one input must be non-empty.
func (s *captureService) Capture(ctx context.Context, text, imageBase64 string) (*models.Transaction, error) {
	if text == "" && imageBase64 == "" {
		return nil, apperrors.ErrCaptureEmpty
	}

	image, err := decodeImage(imageBase64)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "image_base64 is not valid base64")
	}

	parsed, err := s.parser.ParseTransaction(ctx, text, image)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParseFailed, err)
	}

	date, err := time.Parse("2006-01-02", parsed.Date)
	if err != nil {
		// The prompt tells the model to default missing dates to today;
		// mirror that when it returns something unparseable anyway.
		logger.Get().Warnw("capture: unparseable date from model, using today",
			"date", parsed.Date)
		date = time.Now().UTC()
	}

	amount := int64(math.Round(parsed.Amount * 100))

	return s.transactions.CreateTransaction(
		models.TransactionType(parsed.Type),
		amount,
		parsed.Category,
		parsed.Description,
		parsed.Merchant,
		date,
	)
}

// decodeImage decodes a base64 JPEG payload, tolerating a data-URL prefix.
func decodeImage(imageBase64 string) ([]byte, error) {
	if imageBase64 == "" {
		return nil, nil
	}
	if idx := strings.Index(imageBase64, ","); idx != -1 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[idx+1:]
	}
	return base64.StdEncoding.DecodeString(imageBase64)
}

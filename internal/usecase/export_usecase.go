package usecase

import (
	"context"

	"launchpad/internal/domain/entity"
)

// ExportUsecase turns an owned startup's plan into shareable documents.
type ExportUsecase interface {
	Build(ctx context.Context, userID, startupID int64) (*entity.ExportBundle, error)
	// Publish writes the bundle as JSON to the export bucket.
	Publish(ctx context.Context, userID, startupID int64) (*entity.ExportReceipt, error)
	// ShareQR renders a PNG QR code pointing at the startup's share link.
	ShareQR(ctx context.Context, userID, startupID int64) ([]byte, error)
}

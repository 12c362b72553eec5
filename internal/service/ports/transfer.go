package ports

import (
	"context"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type Transfer interface {
	Export(ctx context.Context) (*domain.ExportDocument, error)
	Decode(data []byte) (*domain.ImportDocument, error)
	Apply(ctx context.Context, doc *domain.ImportDocument) error
	Clear(ctx context.Context) error
}

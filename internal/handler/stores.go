package handler

// stores.go declares the narrow store interfaces the handlers depend on.
// The concrete *sql.DB repositories satisfy them in main; tests substitute
// in-memory fakes to exercise the ordering and round-trip behavior without
// a database.

import (
	"context"

	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

// TransferTypeStore is the persistence surface for transfer type cards.
type TransferTypeStore interface {
	Create(ctx context.Context, t *repository.TransferType) error
	GetByID(ctx context.Context, id uint64) (*repository.TransferType, error)
	List(ctx context.Context, activeOnly *bool) ([]*repository.TransferType, error)
	Update(ctx context.Context, t *repository.TransferType) error
	Delete(ctx context.Context, id uint64) error
	Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error)
}

// AtollStore is the persistence surface for atolls and their resort lists.
type AtollStore interface {
	Create(ctx context.Context, a *repository.AtollTransfer) error
	GetByID(ctx context.Context, id uint64) (*repository.AtollTransfer, error)
	ListWithResorts(ctx context.Context, activeOnly *bool) ([]*repository.AtollTransfer, error)
	Update(ctx context.Context, a *repository.AtollTransfer) error
	Delete(ctx context.Context, id uint64) error
	Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error)
}

// ResortStore is the persistence surface for resort pricing rows.
type ResortStore interface {
	Create(ctx context.Context, r *repository.ResortTransfer) error
	GetByID(ctx context.Context, id uint64) (*repository.ResortTransfer, error)
	List(ctx context.Context, activeOnly *bool) ([]*repository.ResortTransfer, error)
	Update(ctx context.Context, r *repository.ResortTransfer) error
	Delete(ctx context.Context, id uint64) error
	Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error)
}

// FAQStore is the persistence surface for transfer FAQs.
type FAQStore interface {
	Create(ctx context.Context, f *repository.TransferFAQ) error
	GetByID(ctx context.Context, id uint64) (*repository.TransferFAQ, error)
	List(ctx context.Context, category string, activeOnly *bool) ([]*repository.TransferFAQ, error)
	Update(ctx context.Context, f *repository.TransferFAQ) error
	Delete(ctx context.Context, id uint64) error
	Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error)
}

// SectionStore is the persistence surface for the kind-scoped section
// resources (contact methods, booking steps, benefits, pricing factors,
// content blocks).
type SectionStore interface {
	Create(ctx context.Context, s *repository.SectionItem) error
	GetByID(ctx context.Context, kind repository.SectionKind, id uint64) (*repository.SectionItem, error)
	List(ctx context.Context, kind repository.SectionKind, activeOnly *bool) ([]*repository.SectionItem, error)
	Update(ctx context.Context, s *repository.SectionItem) error
	Delete(ctx context.Context, kind repository.SectionKind, id uint64) error
	Move(ctx context.Context, kind repository.SectionKind, id uint64, dir ordering.Direction) (bool, error)
}

// FerryStore is the persistence surface for ferry schedules.
type FerryStore interface {
	Create(ctx context.Context, f *repository.FerrySchedule) error
	GetByID(ctx context.Context, id uint64) (*repository.FerrySchedule, error)
	List(ctx context.Context, activeOnly *bool) ([]*repository.FerrySchedule, error)
	Update(ctx context.Context, f *repository.FerrySchedule) error
	Delete(ctx context.Context, id uint64) error
	Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error)
}

// HomepageStore reads and replaces the homepage document.
type HomepageStore interface {
	Document(ctx context.Context, activeOnly bool) (*repository.HomepageDocument, error)
	Replace(ctx context.Context, doc *repository.HomepageDocument) error
}

// DatasetStore snapshots and replaces the whole transportation dataset.
type DatasetStore interface {
	Snapshot(ctx context.Context) (*repository.TransportationDataset, error)
	Replace(ctx context.Context, ds *repository.TransportationDataset) (int, error)
}

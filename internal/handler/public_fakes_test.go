package handler

// Canned read-only fakes for the public aggregate test. Write methods are
// never reached by the endpoints under test.

import (
	"context"

	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

type fakeAtollStore struct {
	items []*repository.AtollTransfer
	// resorts, when set, backs the Resorts attachment on GetByID the same
	// way the SQL repository joins in the atoll's rows.
	resorts *fakeResortStore
}

func (s *fakeAtollStore) Create(context.Context, *repository.AtollTransfer) error { return nil }
func (s *fakeAtollStore) GetByID(_ context.Context, id uint64) (*repository.AtollTransfer, error) {
	for _, a := range s.items {
		if a.ID == id {
			out := *a
			if s.resorts != nil {
				out.Resorts = s.resorts.byAtoll(id)
			}
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (s *fakeAtollStore) Update(context.Context, *repository.AtollTransfer) error { return nil }
func (s *fakeAtollStore) Delete(context.Context, uint64) error                    { return nil }
func (s *fakeAtollStore) Move(context.Context, uint64, ordering.Direction) (bool, error) {
	return false, nil
}

func (s *fakeAtollStore) ListWithResorts(_ context.Context, activeOnly *bool) ([]*repository.AtollTransfer, error) {
	out := []*repository.AtollTransfer{}
	for _, a := range s.items {
		if matchActive(a.IsActive, activeOnly) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeFAQStore struct {
	items []*repository.TransferFAQ
}

func (s *fakeFAQStore) Create(context.Context, *repository.TransferFAQ) error { return nil }
func (s *fakeFAQStore) GetByID(context.Context, uint64) (*repository.TransferFAQ, error) {
	return nil, repository.ErrNotFound
}
func (s *fakeFAQStore) Update(context.Context, *repository.TransferFAQ) error { return nil }
func (s *fakeFAQStore) Delete(context.Context, uint64) error                  { return nil }
func (s *fakeFAQStore) Move(context.Context, uint64, ordering.Direction) (bool, error) {
	return false, nil
}

func (s *fakeFAQStore) List(_ context.Context, category string, activeOnly *bool) ([]*repository.TransferFAQ, error) {
	out := []*repository.TransferFAQ{}
	for _, f := range s.items {
		if category != "" && category != repository.CategoryAll && f.Category != category {
			continue
		}
		if matchActive(f.IsActive, activeOnly) {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeFerryStore struct {
	items  []*repository.FerrySchedule
	nextID uint64
}

func (s *fakeFerryStore) Create(_ context.Context, f *repository.FerrySchedule) error {
	s.nextID++
	f.ID = s.nextID
	if f.Position < 0 {
		f.Position = len(s.items)
	}
	s.items = append(s.items, f)
	return nil
}
func (s *fakeFerryStore) GetByID(context.Context, uint64) (*repository.FerrySchedule, error) {
	return nil, repository.ErrNotFound
}
func (s *fakeFerryStore) Update(context.Context, *repository.FerrySchedule) error { return nil }
func (s *fakeFerryStore) Delete(context.Context, uint64) error                    { return nil }
func (s *fakeFerryStore) Move(context.Context, uint64, ordering.Direction) (bool, error) {
	return false, nil
}

func (s *fakeFerryStore) List(_ context.Context, activeOnly *bool) ([]*repository.FerrySchedule, error) {
	out := []*repository.FerrySchedule{}
	for _, f := range s.items {
		if matchActive(f.IsActive, activeOnly) {
			out = append(out, f)
		}
	}
	return out, nil
}

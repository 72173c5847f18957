package handler

// In-memory store fakes used by the handler tests. They maintain the same
// dense-position behavior as the SQL repositories: append on negative
// position, renumber on delete, neighbor swap on move.

import (
	"context"
	"sort"

	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

func matchActive(active bool, filter *bool) bool {
	return filter == nil || *filter == active
}

type fakeTypeStore struct {
	items  []*repository.TransferType
	nextID uint64
}

func (s *fakeTypeStore) Create(_ context.Context, t *repository.TransferType) error {
	s.nextID++
	t.ID = s.nextID
	if t.Position < 0 {
		t.Position = len(s.items)
	}
	s.items = append(s.items, t)
	s.sortItems()
	return nil
}

func (s *fakeTypeStore) GetByID(_ context.Context, id uint64) (*repository.TransferType, error) {
	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTypeStore) List(_ context.Context, activeOnly *bool) ([]*repository.TransferType, error) {
	out := []*repository.TransferType{}
	for _, t := range s.items {
		if matchActive(t.IsActive, activeOnly) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTypeStore) Update(_ context.Context, t *repository.TransferType) error {
	for _, cur := range s.items {
		if cur.ID == t.ID {
			t.Position = cur.Position
			*cur = *t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeTypeStore) Delete(_ context.Context, id uint64) error {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			for j, rest := range s.items {
				rest.Position = j
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeTypeStore) Move(_ context.Context, id uint64, dir ordering.Direction) (bool, error) {
	ids := make([]uint64, len(s.items))
	for i, t := range s.items {
		ids[i] = t.ID
	}
	idx := ordering.IndexOf(ids, id)
	if idx < 0 {
		return false, repository.ErrNotFound
	}
	reordered, moved := ordering.Move(ids, idx, dir)
	if !moved {
		return false, nil
	}
	pos := ordering.Normalize(reordered)
	for _, t := range s.items {
		t.Position = pos[t.ID]
	}
	s.sortItems()
	return true, nil
}

func (s *fakeTypeStore) sortItems() {
	sort.SliceStable(s.items, func(i, j int) bool { return s.items[i].Position < s.items[j].Position })
}

// fakeResortStore keeps positions dense per atoll, mirroring the SQL
// repository's atoll-scoped renumbering.
type fakeResortStore struct {
	items  []*repository.ResortTransfer
	nextID uint64
}

func (s *fakeResortStore) byAtoll(atollID uint64) []*repository.ResortTransfer {
	out := []*repository.ResortTransfer{}
	for _, rt := range s.items {
		if rt.AtollID == atollID {
			out = append(out, rt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (s *fakeResortStore) Create(_ context.Context, rt *repository.ResortTransfer) error {
	s.nextID++
	rt.ID = s.nextID
	if rt.Position < 0 {
		rt.Position = len(s.byAtoll(rt.AtollID))
	}
	s.items = append(s.items, rt)
	return nil
}

func (s *fakeResortStore) GetByID(_ context.Context, id uint64) (*repository.ResortTransfer, error) {
	for _, rt := range s.items {
		if rt.ID == id {
			return rt, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeResortStore) List(_ context.Context, activeOnly *bool) ([]*repository.ResortTransfer, error) {
	out := []*repository.ResortTransfer{}
	for _, rt := range s.items {
		if matchActive(rt.IsActive, activeOnly) {
			out = append(out, rt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AtollID != out[j].AtollID {
			return out[i].AtollID < out[j].AtollID
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (s *fakeResortStore) Update(_ context.Context, rt *repository.ResortTransfer) error {
	for _, cur := range s.items {
		if cur.ID == rt.ID {
			rt.AtollID = cur.AtollID
			rt.Position = cur.Position
			*cur = *rt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeResortStore) Delete(_ context.Context, id uint64) error {
	for i, rt := range s.items {
		if rt.ID == id {
			atollID := rt.AtollID
			s.items = append(s.items[:i], s.items[i+1:]...)
			for j, sib := range s.byAtoll(atollID) {
				sib.Position = j
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeResortStore) Move(_ context.Context, id uint64, dir ordering.Direction) (bool, error) {
	cur, err := s.GetByID(context.Background(), id)
	if err != nil {
		return false, err
	}
	scoped := s.byAtoll(cur.AtollID)
	ids := make([]uint64, len(scoped))
	for i, rt := range scoped {
		ids[i] = rt.ID
	}
	reordered, moved := ordering.Move(ids, ordering.IndexOf(ids, id), dir)
	if !moved {
		return false, nil
	}
	pos := ordering.Normalize(reordered)
	for _, rt := range scoped {
		rt.Position = pos[rt.ID]
	}
	return true, nil
}

type fakeSectionStore struct {
	items  []*repository.SectionItem
	nextID uint64
}

func (s *fakeSectionStore) countKind(kind repository.SectionKind) int {
	n := 0
	for _, it := range s.items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

func (s *fakeSectionStore) Create(_ context.Context, it *repository.SectionItem) error {
	s.nextID++
	it.ID = s.nextID
	if it.Position < 0 {
		it.Position = s.countKind(it.Kind)
	}
	s.items = append(s.items, it)
	return nil
}

func (s *fakeSectionStore) GetByID(_ context.Context, kind repository.SectionKind, id uint64) (*repository.SectionItem, error) {
	for _, it := range s.items {
		if it.ID == id && it.Kind == kind {
			return it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeSectionStore) List(_ context.Context, kind repository.SectionKind, activeOnly *bool) ([]*repository.SectionItem, error) {
	out := []*repository.SectionItem{}
	for _, it := range s.items {
		if it.Kind == kind && matchActive(it.IsActive, activeOnly) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *fakeSectionStore) Update(_ context.Context, it *repository.SectionItem) error {
	for _, cur := range s.items {
		if cur.ID == it.ID && cur.Kind == it.Kind {
			it.Position = cur.Position
			*cur = *it
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeSectionStore) Delete(_ context.Context, kind repository.SectionKind, id uint64) error {
	for i, it := range s.items {
		if it.ID == id && it.Kind == kind {
			s.items = append(s.items[:i], s.items[i+1:]...)
			j := 0
			for _, rest := range s.items {
				if rest.Kind == kind {
					rest.Position = j
					j++
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeSectionStore) Move(_ context.Context, kind repository.SectionKind, id uint64, dir ordering.Direction) (bool, error) {
	scoped, _ := s.List(context.Background(), kind, nil)
	ids := make([]uint64, len(scoped))
	for i, it := range scoped {
		ids[i] = it.ID
	}
	idx := ordering.IndexOf(ids, id)
	if idx < 0 {
		return false, repository.ErrNotFound
	}
	reordered, moved := ordering.Move(ids, idx, dir)
	if !moved {
		return false, nil
	}
	pos := ordering.Normalize(reordered)
	for _, it := range scoped {
		it.Position = pos[it.ID]
	}
	return true, nil
}

type fakeHomepageStore struct {
	doc *repository.HomepageDocument
}

func (s *fakeHomepageStore) Document(_ context.Context, activeOnly bool) (*repository.HomepageDocument, error) {
	if s.doc == nil {
		return &repository.HomepageDocument{
			Features:     []*repository.HomepageFeature{},
			Testimonials: []*repository.Testimonial{},
			Statistics:   []*repository.Statistic{},
		}, nil
	}
	if !activeOnly {
		return s.doc, nil
	}
	out := &repository.HomepageDocument{
		Features:     []*repository.HomepageFeature{},
		Testimonials: []*repository.Testimonial{},
		Statistics:   []*repository.Statistic{},
		Settings:     s.doc.Settings,
	}
	if s.doc.Hero != nil && s.doc.Hero.IsActive {
		out.Hero = s.doc.Hero
	}
	if s.doc.CTASection != nil && s.doc.CTASection.IsActive {
		out.CTASection = s.doc.CTASection
	}
	for _, f := range s.doc.Features {
		if f.IsActive {
			out.Features = append(out.Features, f)
		}
	}
	for _, t := range s.doc.Testimonials {
		if t.IsActive {
			out.Testimonials = append(out.Testimonials, t)
		}
	}
	for _, st := range s.doc.Statistics {
		if st.IsActive {
			out.Statistics = append(out.Statistics, st)
		}
	}
	return out, nil
}

func (s *fakeHomepageStore) Replace(_ context.Context, doc *repository.HomepageDocument) error {
	var id uint64
	for i, f := range doc.Features {
		id++
		f.ID = id
		f.Position = i
	}
	for i, t := range doc.Testimonials {
		id++
		t.ID = id
		t.Position = i
	}
	for i, st := range doc.Statistics {
		id++
		st.ID = id
		st.Position = i
	}
	s.doc = doc
	return nil
}

type fakeDatasetStore struct {
	snapshot *repository.TransportationDataset
	replaced *repository.TransportationDataset
}

func (s *fakeDatasetStore) Snapshot(_ context.Context) (*repository.TransportationDataset, error) {
	if s.snapshot == nil {
		return &repository.TransportationDataset{}, nil
	}
	return s.snapshot, nil
}

func (s *fakeDatasetStore) Replace(_ context.Context, ds *repository.TransportationDataset) (int, error) {
	s.replaced = ds
	return ds.Count(), nil
}

// This file defines the transportation dataset snapshot used by the admin
// export/import endpoints. Export reads every transportation collection into
// one JSON document; import replaces the entire dataset inside a single
// transaction, so a bad file never leaves the tables half-written.
package repository

import (
	"context"
	"database/sql"
)

// TransportationDataset is the export/import document. Its keys mirror the
// aggregate read endpoint so an exported file can be diffed against a live
// response.
type TransportationDataset struct {
	TransferTypes  []*TransferType  `json:"transfer_types"`
	AtollTransfers []*AtollTransfer `json:"atoll_transfers"`
	FAQs           []*TransferFAQ   `json:"faqs"`
	ContactMethods []*SectionItem   `json:"contact_methods"`
	BookingSteps   []*SectionItem   `json:"booking_steps"`
	Benefits       []*SectionItem   `json:"benefits"`
	PricingFactors []*SectionItem   `json:"pricing_factors"`
	Content        []*SectionItem   `json:"content"`
	FerrySchedules []*FerrySchedule `json:"ferry_schedules"`
}

// Count returns the total number of records in the dataset; the import
// endpoint reports it as imported_count.
func (d *TransportationDataset) Count() int {
	n := len(d.TransferTypes) + len(d.FAQs) + len(d.FerrySchedules) +
		len(d.ContactMethods) + len(d.BookingSteps) + len(d.Benefits) +
		len(d.PricingFactors) + len(d.Content)
	for _, a := range d.AtollTransfers {
		n += 1 + len(a.Resorts)
	}
	return n
}

// DatasetRepo implements whole-dataset snapshot and replace on top of the
// same tables the per-resource repositories use.
type DatasetRepo struct {
	db       *sql.DB
	types    *TransferTypeRepo
	atolls   *AtollRepo
	faqs     *FAQRepo
	sections *SectionRepo
	ferries  *FerryRepo
}

// NewDatasetRepo constructs a DatasetRepo reusing the per-resource repos
// for reads.
func NewDatasetRepo(db *sql.DB) *DatasetRepo {
	return &DatasetRepo{
		db:       db,
		types:    NewTransferTypeRepo(db),
		atolls:   NewAtollRepo(db),
		faqs:     NewFAQRepo(db),
		sections: NewSectionRepo(db),
		ferries:  NewFerryRepo(db),
	}
}

// Snapshot reads the full transportation dataset in display order.
func (r *DatasetRepo) Snapshot(ctx context.Context) (*TransportationDataset, error) {
	ds := &TransportationDataset{}
	var err error
	if ds.TransferTypes, err = r.types.List(ctx, nil); err != nil {
		return nil, err
	}
	if ds.AtollTransfers, err = r.atolls.ListWithResorts(ctx, nil); err != nil {
		return nil, err
	}
	if ds.FAQs, err = r.faqs.List(ctx, "", nil); err != nil {
		return nil, err
	}
	if ds.ContactMethods, err = r.sections.List(ctx, KindContactMethod, nil); err != nil {
		return nil, err
	}
	if ds.BookingSteps, err = r.sections.List(ctx, KindBookingStep, nil); err != nil {
		return nil, err
	}
	if ds.Benefits, err = r.sections.List(ctx, KindBenefit, nil); err != nil {
		return nil, err
	}
	if ds.PricingFactors, err = r.sections.List(ctx, KindPricingFactor, nil); err != nil {
		return nil, err
	}
	if ds.Content, err = r.sections.List(ctx, KindContent, nil); err != nil {
		return nil, err
	}
	if ds.FerrySchedules, err = r.ferries.List(ctx, nil); err != nil {
		return nil, err
	}
	return ds, nil
}

// Replace wipes all transportation tables and writes the dataset in one
// transaction. Positions are normalized to array order; incoming ids are
// discarded and the database assigns fresh ones. Returns the number of
// records written.
func (r *DatasetRepo) Replace(ctx context.Context, ds *TransportationDataset) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, table := range []string{"resort_transfers", "atoll_transfers", "transfer_types",
		"transfer_faqs", "transfer_sections", "ferry_schedules"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return 0, err
		}
	}

	count := 0
	for i, t := range ds.TransferTypes {
		var features, pros, cons string
		if features, err = packStrings(t.Features); err != nil {
			return 0, err
		}
		if pros, err = packStrings(t.Pros); err != nil {
			return 0, err
		}
		if cons, err = packStrings(t.Cons); err != nil {
			return 0, err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO transfer_types
			 (name, description, icon, gradient, features, pricing_range, best_for, pros, cons, is_active, position)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			t.Name, t.Description, t.Icon, t.Gradient, features,
			t.PricingRange, t.BestFor, pros, cons, t.IsActive, i); err != nil {
			return 0, err
		}
		count++
	}

	for i, a := range ds.AtollTransfers {
		var res sql.Result
		if res, err = tx.ExecContext(ctx,
			`INSERT INTO atoll_transfers (atoll_name, description, icon, gradient, is_active, position)
			 VALUES (?,?,?,?,?,?)`,
			a.AtollName, a.Description, a.Icon, a.Gradient, a.IsActive, i); err != nil {
			return 0, err
		}
		var atollID int64
		if atollID, err = res.LastInsertId(); err != nil {
			return 0, err
		}
		count++
		for j, rt := range a.Resorts {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO resort_transfers
				 (atoll_id, resort_name, price, duration, transfer_type, is_active, position)
				 VALUES (?,?,?,?,?,?,?)`,
				atollID, rt.ResortName, rt.Price, rt.Duration, rt.TransferType, rt.IsActive, j); err != nil {
				return 0, err
			}
			count++
		}
	}

	for i, f := range ds.FAQs {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO transfer_faqs (question, answer, category, icon, is_active, position) VALUES (?,?,?,?,?,?)",
			f.Question, f.Answer, f.Category, f.Icon, f.IsActive, i); err != nil {
			return 0, err
		}
		count++
	}

	sectionLists := []struct {
		kind  SectionKind
		items []*SectionItem
	}{
		{KindContactMethod, ds.ContactMethods},
		{KindBookingStep, ds.BookingSteps},
		{KindBenefit, ds.Benefits},
		{KindPricingFactor, ds.PricingFactors},
		{KindContent, ds.Content},
	}
	for _, sl := range sectionLists {
		for i, s := range sl.items {
			if _, err = tx.ExecContext(ctx,
				"INSERT INTO transfer_sections (kind, title, description, icon, value, is_active, position) VALUES (?,?,?,?,?,?,?)",
				string(sl.kind), s.Title, s.Description, s.Icon, s.Value, s.IsActive, i); err != nil {
				return 0, err
			}
			count++
		}
	}

	for i, f := range ds.FerrySchedules {
		var days string
		if days, err = packStrings(f.DaysOfWeek); err != nil {
			return 0, err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO ferry_schedules
			 (route_name, departure_time, arrival_time, duration, price, days_of_week, notes, is_active, position)
			 VALUES (?,?,?,?,?,?,?,?,?)`,
			f.RouteName, f.DepartureTime, f.ArrivalTime, f.Duration, f.Price, days,
			f.Notes, f.IsActive, i); err != nil {
			return 0, err
		}
		count++
	}

	return count, nil
}

package handler

// public.go serves the unauthenticated read endpoints consumed by the
// marketing site. The transportation aggregate bundles every collection of
// the transportation page into one response so the frontend makes a single
// request; responses sit behind the Redis cache middleware.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/repository"
)

// transportationPage mirrors TransportationDataset's layout; the public
// endpoint and the export file stay diffable against each other.
type transportationPage struct {
	TransferTypes  []*repository.TransferType  `json:"transfer_types"`
	AtollTransfers []*repository.AtollTransfer `json:"atoll_transfers"`
	FAQs           []*repository.TransferFAQ   `json:"faqs"`
	ContactMethods []*repository.SectionItem   `json:"contact_methods"`
	BookingSteps   []*repository.SectionItem   `json:"booking_steps"`
	Benefits       []*repository.SectionItem   `json:"benefits"`
	PricingFactors []*repository.SectionItem   `json:"pricing_factors"`
	Content        []*repository.SectionItem   `json:"content"`
	FerrySchedules []*repository.FerrySchedule `json:"ferry_schedules"`
}

// Transportation returns every transportation collection in display order.
// Without ?active= the full dataset comes back; active=true is what the
// public site requests.
func (h *AdminHandler) Transportation(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	active := activeFilter(c)

	var (
		page transportationPage
		err  error
	)
	if page.TransferTypes, err = h.Types.List(ctx, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.AtollTransfers, err = h.Atolls.ListWithResorts(ctx, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.FAQs, err = h.FAQs.List(ctx, c.QueryParam("category"), active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.ContactMethods, err = h.Sections.List(ctx, repository.KindContactMethod, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.BookingSteps, err = h.Sections.List(ctx, repository.KindBookingStep, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.Benefits, err = h.Sections.List(ctx, repository.KindBenefit, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.PricingFactors, err = h.Sections.List(ctx, repository.KindPricingFactor, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.Content, err = h.Sections.List(ctx, repository.KindContent, active); err != nil {
		return writeRepoErr(c, err)
	}
	if page.FerrySchedules, err = h.Ferries.List(ctx, active); err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

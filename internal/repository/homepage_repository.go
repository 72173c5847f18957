// This file defines the homepage document and its repository. The homepage
// is a composite: two singleton rows (hero, CTA section), one settings row,
// and three ordered lists (features, testimonials, statistics). Admin writes
// replace the whole document in one transaction (bulk update); reads
// assemble it back.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Hero is the top-of-page section. Singleton: at most one row, id 1.
type Hero struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description"`
	BackgroundImage  string   `json:"background_image"`
	BackgroundImages []string `json:"background_images"`
	CTAPrimaryText   string   `json:"cta_primary_text"`
	CTAPrimaryLink   string   `json:"cta_primary_link"`
	CTASecondaryText string   `json:"cta_secondary_text"`
	CTASecondaryLink string   `json:"cta_secondary_link"`
	IsActive         bool     `json:"is_active"`
}

// HomepageFeature is one card in the features strip.
type HomepageFeature struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
	Position    int    `json:"order"`
}

// Testimonial is one customer quote. Rating is constrained to 1..5 at the
// API edge and by a CHECK in the schema.
type Testimonial struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Avatar   string `json:"avatar"`
	IsActive bool   `json:"is_active"`
	Position int    `json:"order"`
}

// Statistic is one number in the stats strip ("500+ transfers arranged").
type Statistic struct {
	ID       uint64 `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"is_active"`
	Position int    `json:"order"`
}

// CTASection is the closing call-to-action block. Singleton.
type CTASection struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"button_text"`
	ButtonLink      string `json:"button_link"`
	BackgroundImage string `json:"background_image"`
	IsActive        bool   `json:"is_active"`
}

// SiteSettings holds site-wide contact and social fields. Singleton.
type SiteSettings struct {
	SiteName       string `json:"site_name"`
	Tagline        string `json:"tagline"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	WhatsappNumber string `json:"whatsapp_number"`
	Address        string `json:"address"`
	FacebookURL    string `json:"facebook_url"`
	InstagramURL   string `json:"instagram_url"`
	TwitterURL     string `json:"twitter_url"`
}

// HomepageDocument bundles every homepage collection into the shape the
// dashboard and the public page consume. Absent singletons are nil.
type HomepageDocument struct {
	Hero         *Hero              `json:"hero"`
	Features     []*HomepageFeature `json:"features"`
	Testimonials []*Testimonial     `json:"testimonials"`
	Statistics   []*Statistic       `json:"statistics"`
	CTASection   *CTASection        `json:"cta_section"`
	Settings     *SiteSettings      `json:"settings"`
}

// HomepageRepo encapsulates all database queries for the homepage document.
type HomepageRepo struct {
	db *sql.DB
}

// NewHomepageRepo constructs a HomepageRepo with the provided DB handle.
func NewHomepageRepo(db *sql.DB) *HomepageRepo {
	return &HomepageRepo{db: db}
}

// Document assembles the homepage. With activeOnly true (public page) the
// lists drop inactive rows and inactive singletons come back nil; the
// dashboard reads everything.
func (r *HomepageRepo) Document(ctx context.Context, activeOnly bool) (*HomepageDocument, error) {
	doc := &HomepageDocument{
		Features:     []*HomepageFeature{},
		Testimonials: []*Testimonial{},
		Statistics:   []*Statistic{},
	}

	var (
		hero   Hero
		images string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT title, subtitle, description, background_image, background_images,
		        cta_primary_text, cta_primary_link, cta_secondary_text, cta_secondary_link, is_active
		 FROM homepage_hero WHERE id = 1`).Scan(
		&hero.Title, &hero.Subtitle, &hero.Description, &hero.BackgroundImage, &images,
		&hero.CTAPrimaryText, &hero.CTAPrimaryLink, &hero.CTASecondaryText, &hero.CTASecondaryLink, &hero.IsActive)
	switch {
	case err == nil:
		hero.BackgroundImages = unpackStrings(images)
		if !activeOnly || hero.IsActive {
			doc.Hero = &hero
		}
	case errors.Is(err, sql.ErrNoRows):
		// no hero configured yet
	default:
		return nil, err
	}

	activeCond := ""
	if activeOnly {
		activeCond = " WHERE is_active = TRUE"
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, description, icon, is_active, position FROM homepage_features"+activeCond+" ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		f := new(HomepageFeature)
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.IsActive, &f.Position); err != nil {
			rows.Close()
			return nil, err
		}
		doc.Features = append(doc.Features, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx,
		"SELECT id, name, location, rating, comment, avatar, is_active, position FROM homepage_testimonials"+activeCond+" ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		t := new(Testimonial)
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Comment, &t.Avatar, &t.IsActive, &t.Position); err != nil {
			rows.Close()
			return nil, err
		}
		doc.Testimonials = append(doc.Testimonials, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx,
		"SELECT id, label, value, icon, is_active, position FROM homepage_statistics"+activeCond+" ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		s := new(Statistic)
		if err := rows.Scan(&s.ID, &s.Label, &s.Value, &s.Icon, &s.IsActive, &s.Position); err != nil {
			rows.Close()
			return nil, err
		}
		doc.Statistics = append(doc.Statistics, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var cta CTASection
	err = r.db.QueryRowContext(ctx,
		`SELECT title, subtitle, button_text, button_link, background_image, is_active
		 FROM homepage_cta WHERE id = 1`).Scan(
		&cta.Title, &cta.Subtitle, &cta.ButtonText, &cta.ButtonLink, &cta.BackgroundImage, &cta.IsActive)
	switch {
	case err == nil:
		if !activeOnly || cta.IsActive {
			doc.CTASection = &cta
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, err
	}

	var st SiteSettings
	err = r.db.QueryRowContext(ctx,
		`SELECT site_name, tagline, contact_email, contact_phone, whatsapp_number,
		        address, facebook_url, instagram_url, twitter_url
		 FROM site_settings WHERE id = 1`).Scan(
		&st.SiteName, &st.Tagline, &st.ContactEmail, &st.ContactPhone, &st.WhatsappNumber,
		&st.Address, &st.FacebookURL, &st.InstagramURL, &st.TwitterURL)
	switch {
	case err == nil:
		doc.Settings = &st
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, err
	}

	return doc, nil
}

// Replace writes the whole homepage document in one transaction (the bulk
// update endpoint). List positions are normalized to array order, so the
// stored document always satisfies the dense 0..N-1 invariant. Nil
// singletons in the incoming document clear the stored row.
func (r *HomepageRepo) Replace(ctx context.Context, doc *HomepageDocument) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM homepage_hero WHERE id = 1"); err != nil {
		return err
	}
	if doc.Hero != nil {
		var images string
		if images, err = packStrings(doc.Hero.BackgroundImages); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO homepage_hero
			 (id, title, subtitle, description, background_image, background_images,
			  cta_primary_text, cta_primary_link, cta_secondary_text, cta_secondary_link, is_active)
			 VALUES (1,?,?,?,?,?,?,?,?,?,?)`,
			doc.Hero.Title, doc.Hero.Subtitle, doc.Hero.Description, doc.Hero.BackgroundImage, images,
			doc.Hero.CTAPrimaryText, doc.Hero.CTAPrimaryLink, doc.Hero.CTASecondaryText,
			doc.Hero.CTASecondaryLink, doc.Hero.IsActive); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM homepage_features"); err != nil {
		return err
	}
	for i, f := range doc.Features {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO homepage_features (title, description, icon, is_active, position) VALUES (?,?,?,?,?)",
			f.Title, f.Description, f.Icon, f.IsActive, i); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM homepage_testimonials"); err != nil {
		return err
	}
	for i, t := range doc.Testimonials {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO homepage_testimonials (name, location, rating, comment, avatar, is_active, position) VALUES (?,?,?,?,?,?,?)",
			t.Name, t.Location, t.Rating, t.Comment, t.Avatar, t.IsActive, i); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM homepage_statistics"); err != nil {
		return err
	}
	for i, s := range doc.Statistics {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO homepage_statistics (label, value, icon, is_active, position) VALUES (?,?,?,?,?)",
			s.Label, s.Value, s.Icon, s.IsActive, i); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM homepage_cta WHERE id = 1"); err != nil {
		return err
	}
	if doc.CTASection != nil {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO homepage_cta (id, title, subtitle, button_text, button_link, background_image, is_active)
			 VALUES (1,?,?,?,?,?,?)`,
			doc.CTASection.Title, doc.CTASection.Subtitle, doc.CTASection.ButtonText,
			doc.CTASection.ButtonLink, doc.CTASection.BackgroundImage, doc.CTASection.IsActive); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM site_settings WHERE id = 1"); err != nil {
		return err
	}
	if doc.Settings != nil {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO site_settings
			 (id, site_name, tagline, contact_email, contact_phone, whatsapp_number,
			  address, facebook_url, instagram_url, twitter_url)
			 VALUES (1,?,?,?,?,?,?,?,?,?)`,
			doc.Settings.SiteName, doc.Settings.Tagline, doc.Settings.ContactEmail,
			doc.Settings.ContactPhone, doc.Settings.WhatsappNumber, doc.Settings.Address,
			doc.Settings.FacebookURL, doc.Settings.InstagramURL, doc.Settings.TwitterURL); err != nil {
			return err
		}
	}

	return nil
}

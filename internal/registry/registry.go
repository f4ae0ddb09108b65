// Package registry maintains the per-site ordered history of metric records
// over a whole-document JSON store. One active workflow at a time is assumed:
// every mutation rewrites the full document, and concurrent writers from
// separate processes are last-writer-wins.
package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dotcommander/greenseal/internal/metrics"
	"github.com/dotcommander/greenseal/internal/schema"
	"github.com/dotcommander/greenseal/internal/store"
)

// ErrNotFound reports an operation referencing an unknown site key or record
// id where existence is required.
var ErrNotFound = errors.New("not found")

// Site is one restaurant location and its submission history. Records are
// append-only; individual records may be deleted by id, never reordered.
type Site struct {
	Key      string            `json:"-"`
	Name     string            `json:"name"`
	Locality string            `json:"locality"`
	Records  []*metrics.Record `json:"records"`
}

type document struct {
	Sites map[string]*Site `json:"sites"`
}

// Registry owns the sites document.
type Registry struct {
	path   string
	logger *slog.Logger
	sites  map[string]*Site
}

// Open loads the sites document at path, validating it against the document
// schema. A missing document is seeded with the default sites and persisted.
func Open(path string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Registry{path: path, logger: logger}

	raw, err := store.LoadRaw(path)
	if errors.Is(err, os.ErrNotExist) {
		r.sites = defaultSites()
		if err := r.persist(); err != nil {
			return nil, fmt.Errorf("failed to seed sites document: %w", err)
		}
		logger.Debug("seeded sites document", "path", path, "sites", len(r.sites))
		return r, nil
	}
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateSites(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := store.Load(path, &doc); err != nil {
		return nil, err
	}
	if doc.Sites == nil {
		doc.Sites = make(map[string]*Site)
	}
	for key, site := range doc.Sites {
		site.Key = key
		if site.Records == nil {
			site.Records = []*metrics.Record{}
		}
	}
	r.sites = doc.Sites
	logger.Debug("loaded sites document", "path", path, "sites", len(r.sites))
	return r, nil
}

// defaultSites seeds a fresh installation with the demo locations.
func defaultSites() map[string]*Site {
	return map[string]*Site{
		"dominos_miraflores": {Key: "dominos_miraflores", Name: "Domino's - Miraflores", Locality: "Miraflores", Records: []*metrics.Record{}},
		"dominos_sanisidro":  {Key: "dominos_sanisidro", Name: "Domino's - San Isidro", Locality: "San Isidro", Records: []*metrics.Record{}},
		"dominos_limacentro": {Key: "dominos_limacentro", Name: "Domino's - Lima Centro", Locality: "Lima", Records: []*metrics.Record{}},
	}
}

// Site returns one site by key.
func (r *Registry) Site(key string) (*Site, error) {
	site, ok := r.sites[key]
	if !ok {
		return nil, fmt.Errorf("site %q: %w", key, ErrNotFound)
	}
	return site, nil
}

// Sites returns all sites sorted by key.
func (r *Registry) Sites() []*Site {
	keys := make([]string, 0, len(r.sites))
	for key := range r.sites {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sites := make([]*Site, 0, len(keys))
	for _, key := range keys {
		sites = append(sites, r.sites[key])
	}
	return sites
}

// AddSite provisions a new site. Site keys are stable and never reused.
func (r *Registry) AddSite(key, name, locality string) error {
	if key == "" || name == "" {
		return fmt.Errorf("site key and name are required")
	}
	if _, exists := r.sites[key]; exists {
		return fmt.Errorf("site %q already exists", key)
	}
	r.sites[key] = &Site{Key: key, Name: name, Locality: locality, Records: []*metrics.Record{}}
	if err := r.persist(); err != nil {
		return err
	}
	r.logger.Debug("added site", "site", key)
	return nil
}

// Append adds a record to the end of a site's history.
func (r *Registry) Append(siteKey string, rec *metrics.Record) error {
	site, err := r.Site(siteKey)
	if err != nil {
		return err
	}
	site.Records = append(site.Records, rec)
	if err := r.persist(); err != nil {
		return err
	}
	r.logger.Debug("appended record", "site", siteKey, "record", rec.ID, "month", rec.Month)
	return nil
}

// UpdateOilDelivered marks a record's used oil as handed to an authorized
// handler. This is the only post-construction mutation a record permits, and
// it is idempotent.
func (r *Registry) UpdateOilDelivered(siteKey, recordID string) error {
	site, err := r.Site(siteKey)
	if err != nil {
		return err
	}
	for _, rec := range site.Records {
		if rec.ID == recordID {
			if rec.OilDelivered {
				return nil
			}
			rec.OilDelivered = true
			if err := r.persist(); err != nil {
				return err
			}
			r.logger.Debug("marked oil delivered", "site", siteKey, "record", recordID)
			return nil
		}
	}
	return fmt.Errorf("record %q in site %q: %w", recordID, siteKey, ErrNotFound)
}

// Delete removes a record by id. An unknown record id is a no-op, not an
// error.
func (r *Registry) Delete(siteKey, recordID string) error {
	site, err := r.Site(siteKey)
	if err != nil {
		return err
	}
	for i, rec := range site.Records {
		if rec.ID == recordID {
			site.Records = append(site.Records[:i], site.Records[i+1:]...)
			if err := r.persist(); err != nil {
				return err
			}
			r.logger.Debug("deleted record", "site", siteKey, "record", recordID)
			return nil
		}
	}
	return nil
}

// Latest returns the last-appended record, or nil if the site has none.
// "Latest" means last submitted, not the chronologically highest month.
func (r *Registry) Latest(siteKey string) (*metrics.Record, error) {
	site, err := r.Site(siteKey)
	if err != nil {
		return nil, err
	}
	if len(site.Records) == 0 {
		return nil, nil
	}
	return site.Records[len(site.Records)-1], nil
}

// History returns records most-recent-first. A limit of 0 or less returns
// everything.
func (r *Registry) History(siteKey string, limit int) ([]*metrics.Record, error) {
	site, err := r.Site(siteKey)
	if err != nil {
		return nil, err
	}
	out := make([]*metrics.Record, 0, len(site.Records))
	for i := len(site.Records) - 1; i >= 0; i-- {
		out = append(out, site.Records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *Registry) persist() error {
	return store.Save(r.path, document{Sites: r.sites})
}

// Package ledger keeps the append-only log of certification issuances. Score
// and tier are computed at issuance time and frozen into the entry; later
// changes to the source record never rewrite history.
package ledger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dotcommander/greenseal/internal/metrics"
	"github.com/dotcommander/greenseal/internal/registry"
	"github.com/dotcommander/greenseal/internal/schema"
	"github.com/dotcommander/greenseal/internal/scoring"
	"github.com/dotcommander/greenseal/internal/store"
)

// Entry is one issuance event. Entries are never mutated or deleted.
type Entry struct {
	ID       string       `json:"id"`
	SiteKey  string       `json:"site_key"`
	SiteName string       `json:"site_name"`
	Score    float64      `json:"score"`
	Tier     scoring.Tier `json:"tier"`
	IssuedAt time.Time    `json:"issued_at"`
	IssuedBy string       `json:"issued_by"`
}

// Ledger owns the certification document.
type Ledger struct {
	path    string
	logger  *slog.Logger
	weights *scoring.Weights
	entries []Entry
	now     func() time.Time
}

// Open loads the certification document at path. A missing document starts an
// empty ledger; the file is created on first issuance.
func Open(path string, weights *scoring.Weights, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Ledger{path: path, logger: logger, weights: weights, now: time.Now}

	raw, err := store.LoadRaw(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateLedger(raw); err != nil {
		return nil, err
	}

	if err := store.Load(path, &l.entries); err != nil {
		return nil, err
	}
	logger.Debug("loaded certification ledger", "path", path, "entries", len(l.entries))
	return l, nil
}

// Issue computes the record's score and tier, freezes them into a new entry,
// appends it to the ledger and persists. Any score may be certified,
// including Bronze; no rejection policy exists.
func (l *Ledger) Issue(site *registry.Site, rec *metrics.Record, issuer string) (Entry, error) {
	score := scoring.Score(rec, l.weights)
	entry := Entry{
		ID:       uuid.NewString()[:8],
		SiteKey:  site.Key,
		SiteName: site.Name,
		Score:    score,
		Tier:     scoring.TierFromScore(score),
		IssuedAt: l.now().UTC().Truncate(time.Second),
		IssuedBy: issuer,
	}
	l.entries = append(l.entries, entry)
	if err := store.Save(l.path, l.entries); err != nil {
		return Entry{}, fmt.Errorf("failed to persist certification: %w", err)
	}
	l.logger.Debug("issued certification", "site", site.Key, "score", entry.Score, "tier", entry.Tier)
	return entry, nil
}

// History returns all entries in insertion order. The returned slice is a
// copy; the ledger itself stays append-only.
func (l *Ledger) History() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

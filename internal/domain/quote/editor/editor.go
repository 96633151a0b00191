// Package editor keeps quote drafts in memory while a user composes them.
// The tenant vocabulary and currency are loaded once when a session starts
// and threaded into every composer call made for that session.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/domain/placeholder"
	"iq-home/quote_backend/internal/domain/quote"
)

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrSessionExpired  = errors.New("editor session expired")
)

// Repository is the persistence the editor reads from and saves to.
type Repository interface {
	GetTenant(ctx context.Context, tenantID int64) (quote.Tenant, error)
	GetTemplate(ctx context.Context, tenantID, templateID int64) (quote.Template, error)
	GetProduct(ctx context.Context, tenantID, productID int64) (quote.Product, error)
	GetQuote(ctx context.Context, tenantID, quoteID int64) (quote.Quote, error)
	CreateQuote(ctx context.Context, q quote.Quote) (quote.Quote, error)
	UpdateQuote(ctx context.Context, q quote.Quote) (quote.Quote, error)
}

// Session is a snapshot of one editing session.
type Session struct {
	ID           uuid.UUID
	TenantID     int64
	QuoteID      int64
	Title        string
	CustomerName string
	Vocabulary   placeholder.Vocabulary
	Currency     string
	Draft        quote.Draft
	UpdatedAt    time.Time
}

// Overview is the display form of the session draft.
func (s Session) Overview() (string, error) {
	return quote.ComposeOverview(s.Draft.Content, s.Vocabulary)
}

type entry struct {
	mu      sync.Mutex
	session Session
}

type Editor struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

func New(repo Repository, ttl time.Duration) *Editor {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Editor{
		repo:     repo,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*entry),
	}
}

type StartInput struct {
	TemplateID   *int64
	Title        string
	CustomerName string
}

// Start opens a session whose content comes from the template, or is empty.
func (e *Editor) Start(ctx context.Context, tenantID int64, in StartInput) (Session, error) {
	content := ""
	if in.TemplateID != nil {
		tpl, err := e.repo.GetTemplate(ctx, tenantID, *in.TemplateID)
		if err != nil {
			return Session{}, fmt.Errorf("load template %d: %w", *in.TemplateID, err)
		}
		content = tpl.Content
	}
	return e.open(ctx, tenantID, 0, in.Title, in.CustomerName, content)
}

// Edit opens a session on a saved quote; saving it updates that quote.
func (e *Editor) Edit(ctx context.Context, tenantID, quoteID int64) (Session, error) {
	q, err := e.repo.GetQuote(ctx, tenantID, quoteID)
	if err != nil {
		return Session{}, fmt.Errorf("load quote %d: %w", quoteID, err)
	}
	return e.open(ctx, tenantID, q.ID, q.Title, q.CustomerName, q.Content)
}

// Clone opens a session seeded with a saved quote; saving it creates a new quote.
func (e *Editor) Clone(ctx context.Context, tenantID, quoteID int64) (Session, error) {
	q, err := e.repo.GetQuote(ctx, tenantID, quoteID)
	if err != nil {
		return Session{}, fmt.Errorf("load quote %d: %w", quoteID, err)
	}
	return e.open(ctx, tenantID, 0, q.Title, q.CustomerName, q.Content)
}

func (e *Editor) open(ctx context.Context, tenantID, quoteID int64, title, customer, content string) (Session, error) {
	tenant, err := e.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return Session{}, fmt.Errorf("load tenant %d: %w", tenantID, err)
	}
	vocab := tenant.Vocabulary.WithDefaults()
	if err := vocab.Validate(); err != nil {
		return Session{}, err
	}
	currency := tenant.CurrencySymbol
	if currency == "" {
		currency = placeholder.DefaultCurrency
	}

	s := Session{
		ID:           uuid.New(),
		TenantID:     tenantID,
		QuoteID:      quoteID,
		Title:        title,
		CustomerName: customer,
		Vocabulary:   vocab,
		Currency:     currency,
		Draft:        quote.Draft{Content: content},
		UpdatedAt:    e.now(),
	}

	e.mu.Lock()
	e.sessions[s.ID] = &entry{session: s}
	e.mu.Unlock()

	log.Info().Str("session", s.ID.String()).Int64("tenant", tenantID).Int64("quote", quoteID).
		Msg("quote editor: session opened")
	return s, nil
}

// Get returns the current state of a session.
func (e *Editor) Get(tenantID int64, id uuid.UUID) (Session, error) {
	var out Session
	err := e.with(tenantID, id, func(s *Session) error {
		out = *s
		return nil
	})
	return out, err
}

// AddProduct inserts a catalog product into the draft. A nil productID is a
// no-op, matching an add action with nothing selected.
func (e *Editor) AddProduct(ctx context.Context, tenantID int64, id uuid.UUID, productID *int64, discountPercent int) (Session, error) {
	var out Session
	err := e.with(tenantID, id, func(s *Session) error {
		var p *quote.Product
		if productID != nil {
			prod, err := e.repo.GetProduct(ctx, tenantID, *productID)
			if err != nil {
				return fmt.Errorf("load product %d: %w", *productID, err)
			}
			p = &prod
		}
		draft, err := quote.AddProduct(s.Draft, p, discountPercent, s.Vocabulary, s.Currency)
		if err != nil {
			return err
		}
		s.Draft = draft
		s.UpdatedAt = e.now()
		out = *s
		return nil
	})
	return out, err
}

// SetContent replaces the draft after a free-text edit.
func (e *Editor) SetContent(tenantID int64, id uuid.UUID, content string) (Session, error) {
	var out Session
	err := e.with(tenantID, id, func(s *Session) error {
		s.Draft = quote.Draft{Content: content}
		s.UpdatedAt = e.now()
		out = *s
		return nil
	})
	return out, err
}

// Save persists the draft. The session stays open and now points to the
// saved quote.
func (e *Editor) Save(ctx context.Context, tenantID int64, id uuid.UUID) (quote.Quote, error) {
	var saved quote.Quote
	err := e.with(tenantID, id, func(s *Session) error {
		q := quote.Quote{
			ID:           s.QuoteID,
			TenantID:     s.TenantID,
			Title:        s.Title,
			CustomerName: s.CustomerName,
			Content:      s.Draft.Content,
		}
		var err error
		if q.ID == 0 {
			saved, err = e.repo.CreateQuote(ctx, q)
		} else {
			saved, err = e.repo.UpdateQuote(ctx, q)
		}
		if err != nil {
			return fmt.Errorf("save quote: %w", err)
		}
		s.QuoteID = saved.ID
		s.UpdatedAt = e.now()
		return nil
	})
	if err == nil {
		log.Info().Str("session", id.String()).Int64("quote", saved.ID).Msg("quote editor: saved")
	}
	return saved, err
}

// Close drops a session without saving.
func (e *Editor) Close(tenantID int64, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.sessions[id]
	if !ok || en.session.TenantID != tenantID {
		return ErrSessionNotFound
	}
	delete(e.sessions, id)
	return nil
}

// Prune removes sessions idle for longer than the TTL and returns how many
// were removed.
func (e *Editor) Prune() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for id, en := range e.sessions {
		// busy sessions are in use, so not idle
		if !en.mu.TryLock() {
			continue
		}
		expired := e.expired(en.session)
		en.mu.Unlock()
		if expired {
			delete(e.sessions, id)
			n++
		}
	}
	return n
}

// Run prunes expired sessions every interval until ctx is done.
func (e *Editor) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := e.Prune(); n > 0 {
				log.Debug().Int("count", n).Msg("quote editor: pruned sessions")
			}
		}
	}
}

func (e *Editor) expired(s Session) bool {
	return e.now().Sub(s.UpdatedAt) > e.ttl
}

// with runs fn on the session under its own lock. Sessions are owned by a
// single tenant; other tenants see them as missing.
func (e *Editor) with(tenantID int64, id uuid.UUID, fn func(*Session) error) error {
	e.mu.Lock()
	en, ok := e.sessions[id]
	e.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	en.mu.Lock()
	if en.session.TenantID != tenantID {
		en.mu.Unlock()
		return ErrSessionNotFound
	}
	if e.expired(en.session) {
		en.mu.Unlock()
		e.mu.Lock()
		delete(e.sessions, id)
		e.mu.Unlock()
		return ErrSessionExpired
	}
	defer en.mu.Unlock()
	return fn(&en.session)
}

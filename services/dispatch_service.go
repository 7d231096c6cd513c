package services // Use-case layer; runs the front controller per request and keeps the journal.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/repositories"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DispatchService lists the use-cases handlers and the CLI can call.
type DispatchService interface {
	// Front controller:
	Dispatch(role models.Role, request any, bind func(Class)) (*models.Dispatch, error)
	Resolve(role models.Role, path string) (*models.ResolveResponse, error)
	Classes() []string

	// Journal & debug log:
	GetDispatch(id uint) (*models.Dispatch, error)
	ListDispatches(page, limit int) (*models.PagedDispatches, error)
	DebugLog(limit int64) ([]redislog.Entry, error)
}

// dispatchService shares one registry and one set of Frock options across requests.
type dispatchService struct {
	registry *Registry
	opts     []Option
	repo     repositories.DispatchRepository // nil when the journal is disabled
	rdb      *redis.Client                   // nil when Redis is not configured
	log      *redislog.Logger
	newID    func() string
	now      func() time.Time
}

// NewDispatchService constructs the service; opts are applied to every per-request Frock.
func NewDispatchService(reg *Registry, repo repositories.DispatchRepository, rdb *redis.Client, rlog *redislog.Logger, opts ...Option) DispatchService {
	if reg == nil {
		reg = NewRegistry()
	}
	return &dispatchService{
		registry: reg,
		opts:     opts,
		repo:     repo,
		rdb:      rdb,
		log:      rlog,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

// dispatchCacheTTL is how long a journal row stays in Redis.
const dispatchCacheTTL = 10 * time.Minute

// Journal column sizes (see models.Dispatch).
const (
	maxNameLen  = 255
	maxErrorLen = 512
)

func (s *dispatchService) cacheKeyDispatch(id uint) string {
	return fmt.Sprintf("dispatch:%d", id) // e.g., "dispatch:42".
}

func (s *dispatchService) newFrock(request any, requestID string) *Frock {
	opts := make([]Option, 0, len(s.opts)+2)
	opts = append(opts, s.opts...)
	opts = append(opts, WithRegistry(s.registry))
	if s.log.Enabled() {
		opts = append(opts, WithDebugSink(s.log, map[string]string{"request_id": requestID}))
	}
	return NewFrock(request, opts...)
}

// ---------------- Front controller ----------------

// Dispatch builds a Frock for request, runs the class for role and journals the outcome.
// The journal write is best-effort; the returned error is the dispatch error only.
func (s *dispatchService) Dispatch(role models.Role, request any, bind func(Class)) (*models.Dispatch, error) {
	start := s.now()
	rec := &models.Dispatch{RequestID: s.newID(), Role: string(role)}

	f := s.newFrock(request, rec.RequestID)
	path := f.effectivePath("")
	className, _ := f.className(role, "")
	rec.Path = truncate(path, maxNameLen)
	rec.ClassName = truncate(className, maxNameLen)

	err := f.ExecutePathWith(role, "", bind)
	switch {
	case err == nil:
		rec.Status = models.StatusOK
	case IsClassNotFound(err):
		rec.Status = models.StatusClassNotFound
	case errors.Is(err, ErrUnknownRole):
		rec.Status = models.StatusUnknownRole
	default:
		rec.Status = models.StatusError
	}
	if err != nil {
		rec.Error = truncate(err.Error(), maxErrorLen)
		s.log.Warn("dispatch failed", map[string]string{"request_id": rec.RequestID, "class": className, "err": err.Error()})
	}
	rec.DurationMS = s.now().Sub(start).Milliseconds()

	if s.repo != nil {
		if jerr := s.repo.Create(rec); jerr != nil { // never fail the request because of the journal
			s.log.Error("journal write error", map[string]string{"request_id": rec.RequestID, "err": jerr.Error()})
		}
	}
	return rec, err
}

// Resolve previews the class name for role/path without instantiating anything.
func (s *dispatchService) Resolve(role models.Role, path string) (*models.ResolveResponse, error) {
	f := s.newFrock(nil, "resolve")
	name, ok := f.GetClassName(role, path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(role))
	}
	return &models.ResolveResponse{
		Role:       role,
		Path:       f.effectivePath(path),
		ClassName:  name,
		Registered: s.registry.Has(name),
	}, nil
}

// Classes lists every registered class name.
func (s *dispatchService) Classes() []string {
	return s.registry.Names()
}

// ---------------- Journal ----------------

// GetDispatch returns one journal row, preferring Redis cache and falling back to DB.
func (s *dispatchService) GetDispatch(id uint) (*models.Dispatch, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}

	if s.rdb != nil {
		ctx := context.Background()
		key := s.cacheKeyDispatch(id)
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var d models.Dispatch
			if json.Unmarshal([]byte(val), &d) == nil {
				return &d, nil // cache HIT
			}
			s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
		} else if err != redis.Nil {
			s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Journal rows never change, so caching is safe.
	if s.rdb != nil {
		ctx := context.Background()
		key := s.cacheKeyDispatch(id)
		if b, _ := json.Marshal(d); len(b) > 0 {
			if err := s.rdb.Set(ctx, key, b, dispatchCacheTTL).Err(); err != nil {
				s.log.Error("cache SET error", map[string]string{"key": key, "err": err.Error()})
			}
		}
	}
	return d, nil
}

// ListDispatches returns a page of journal rows and the total count.
func (s *dispatchService) ListDispatches(page, limit int) (*models.PagedDispatches, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}

	// Sanitize inputs: default page=1, limit=10..100
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	items, total, err := s.repo.List(offset, limit)
	if err != nil {
		s.log.Error("ListDispatches db error", map[string]string{"err": err.Error()})
		return nil, err
	}
	if items == nil {
		items = []models.Dispatch{}
	}
	return &models.PagedDispatches{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// DebugLog returns the newest trace lines pushed by per-request dispatchers.
func (s *dispatchService) DebugLog(limit int64) ([]redislog.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.log.Recent(context.Background(), limit)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

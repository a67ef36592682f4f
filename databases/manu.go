package databases

// go generate: mockery --name ManuDatabase
// go generate: mockery --name Notifier

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

// Store errors. Callers match them with errors.Is.
var (
	ErrNotFound          = errors.New("manu not found")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidDepartment = errors.New("invalid department category")
	ErrInvalidTaluk      = errors.New("taluk does not belong to district")
	ErrInvalidStatus     = errors.New("invalid manu status")
	ErrUnknownDistrict   = errors.New("unknown district")
)

const day = 24 * time.Hour

// ManuFilter narrows Find. Zero values match everything.
type ManuFilter struct {
	District string
	Taluk    string
	Statuses []models.ManuStatus
}

func (f ManuFilter) matches(m models.Manu) bool {
	if f.District != "" && m.District != f.District {
		return false
	}
	if f.Taluk != "" && m.Taluk != f.Taluk {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if m.Status == s {
			return true
		}
	}
	return false
}

// ManuDatabase contains the methods to use with the manu store
type ManuDatabase interface {
	Find(ctx context.Context, filter ManuFilter) ([]models.Manu, error)
	FindOne(ctx context.Context, id string) (*models.Manu, error)
	InsertOne(ctx context.Context, input models.NewManuInput) (*models.Manu, error)
	UpdateStatus(ctx context.Context, id string, status models.ManuStatus) (*models.Manu, error)
	CountDocuments(ctx context.Context) (int64, error)
}

// Notifier receives every successful mutation of the store
type Notifier interface {
	Notify(event models.ManuEvent)
}

// Option configures a manu database
type Option func(*manuDatabase)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(db *manuDatabase) {
		db.now = now
	}
}

// WithNotifier registers a notifier for created and updated manus
func WithNotifier(n Notifier) Option {
	return func(db *manuDatabase) {
		db.notifier = n
	}
}

// WithSeed loads the demo data set when the store is built. Seed records
// whose id is already taken by a WithManus record are skipped.
func WithSeed() Option {
	return func(db *manuDatabase) {
		db.seed = true
	}
}

// WithManus loads the given manus as stored records. Derived fields are
// recomputed on read, so only the stored fields matter. Only the first record
// with a given id is kept.
func WithManus(manus ...models.Manu) Option {
	return func(db *manuDatabase) {
		db.manus = append(db.manus, manus...)
	}
}

type manuDatabase struct {
	mu       sync.RWMutex
	manus    []models.Manu
	lastID   int
	now      func() time.Time
	notifier Notifier
	seed     bool
}

// NewManuDatabase initializes an in-memory manu store
func NewManuDatabase(opts ...Option) ManuDatabase {
	db := &manuDatabase{now: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	taken := make(map[string]bool)
	db.manus = uniqueByID(db.manus, taken)
	if db.seed {
		db.manus = append(uniqueByID(SeedManus(db.now()), taken), db.manus...)
	}
	for _, m := range db.manus {
		if n, err := strconv.Atoi(m.ID); err == nil && n > db.lastID {
			db.lastID = n
		}
	}
	return db
}

// uniqueByID keeps the manus whose id is not in taken yet and adds their ids
// to it
func uniqueByID(manus []models.Manu, taken map[string]bool) []models.Manu {
	out := make([]models.Manu, 0, len(manus))
	for _, m := range manus {
		if taken[m.ID] {
			zap.S().Warnw("dropping manu with duplicate id", "manuId", m.ID)
			continue
		}
		taken[m.ID] = true
		out = append(out, m)
	}
	return out
}

// PendingDays is the number of whole days between created and now, never negative
func PendingDays(created, now time.Time) int {
	if !now.After(created) {
		return 0
	}
	return int(now.Sub(created) / day)
}

// view returns a copy of a stored record with pending days and derived fields
// brought up to date. Resolved manus keep the pending days frozen at resolution.
func (db *manuDatabase) view(m models.Manu, now time.Time) models.Manu {
	if m.Status != models.StatusResolved {
		m.PendingDays = PendingDays(m.CreatedDate, now)
	}
	scoring.Apply(&m)
	return m
}

func (db *manuDatabase) Find(ctx context.Context, filter ManuFilter) ([]models.Manu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := db.now()

	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]models.Manu, 0, len(db.manus))
	for _, m := range db.manus {
		if filter.matches(m) {
			out = append(out, db.view(m, now))
		}
	}
	return out, nil
}

func (db *manuDatabase) FindOne(ctx context.Context, id string) (*models.Manu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := db.now()

	db.mu.RLock()
	defer db.mu.RUnlock()

	idx := db.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("find manu %q: %w", id, ErrNotFound)
	}
	m := db.view(db.manus[idx], now)
	return &m, nil
}

func (db *manuDatabase) InsertOne(ctx context.Context, input models.NewManuInput) (*models.Manu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	input, err := validateNewManu(input)
	if err != nil {
		return nil, err
	}
	now := db.now()

	db.mu.Lock()
	db.lastID++
	stored := models.Manu{
		ID:                 strconv.Itoa(db.lastID),
		CitizenName:        input.CitizenName,
		District:           input.District,
		Taluk:              input.Taluk,
		DepartmentCategory: input.DepartmentCategory,
		Title:              input.Title,
		DescriptionText:    input.DescriptionText,
		Status:             models.StatusSubmitted,
		CreatedDate:        now,
		LastUpdatedDate:    now,
	}
	db.manus = append(db.manus, stored)
	db.mu.Unlock()

	m := db.view(stored, now)
	db.notify(models.ManuEvent{Event: models.EventManuCreated, Manu: m, At: now})
	return &m, nil
}

func (db *manuDatabase) UpdateStatus(ctx context.Context, id string, status models.ManuStatus) (*models.Manu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("update manu %q to %q: %w", id, status, ErrInvalidStatus)
	}
	now := db.now()

	db.mu.Lock()
	idx := db.indexOf(id)
	if idx < 0 {
		db.mu.Unlock()
		return nil, fmt.Errorf("update manu %q: %w", id, ErrNotFound)
	}
	stored := db.manus[idx]
	prev := stored.Status
	stored.Status = status
	stored.PendingDays = PendingDays(stored.CreatedDate, now)
	stored.LastUpdatedDate = now
	db.manus[idx] = stored
	db.mu.Unlock()

	m := db.view(stored, now)
	db.notify(models.ManuEvent{Event: models.EventManuStatusUpdated, Manu: m, PrevStatus: prev, At: now})
	return &m, nil
}

func (db *manuDatabase) CountDocuments(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return int64(len(db.manus)), nil
}

func (db *manuDatabase) indexOf(id string) int {
	for i := range db.manus {
		if db.manus[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *manuDatabase) notify(event models.ManuEvent) {
	if db.notifier != nil {
		db.notifier.Notify(event)
	}
}

func validateNewManu(input models.NewManuInput) (models.NewManuInput, error) {
	input.CitizenName = strings.TrimSpace(input.CitizenName)
	input.District = strings.TrimSpace(input.District)
	input.Taluk = strings.TrimSpace(input.Taluk)
	input.DepartmentCategory = models.DepartmentCategory(strings.TrimSpace(string(input.DepartmentCategory)))
	input.Title = strings.TrimSpace(input.Title)
	input.DescriptionText = strings.TrimSpace(input.DescriptionText)

	fields := []struct {
		name  string
		value string
	}{
		{"citizenName", input.CitizenName},
		{"district", input.District},
		{"taluk", input.Taluk},
		{"departmentCategory", string(input.DepartmentCategory)},
		{"title", input.Title},
		{"descriptionText", input.DescriptionText},
	}
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return input, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingField)
	}

	if !input.DepartmentCategory.Valid() {
		return input, fmt.Errorf("%q: %w", input.DepartmentCategory, ErrInvalidDepartment)
	}
	if taluks, ok := districtTaluks[input.District]; ok {
		if !slices.Contains(taluks, input.Taluk) {
			return input, fmt.Errorf("%q in %q: %w", input.Taluk, input.District, ErrInvalidTaluk)
		}
	}
	return input, nil
}

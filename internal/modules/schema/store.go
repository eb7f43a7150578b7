package schema

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ororso11/m-led/internal/shared/apperr"
	"github.com/ororso11/m-led/internal/shared/colid"
)

// Store owns the settings document. The database row is authoritative;
// the in-memory document is a cache refreshed on every successful write.
type Store struct {
	db *gorm.DB

	mu  sync.RWMutex
	doc Document
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads the settings row, seeding defaults when none exists and
// re-saving once if legacy-shaped categories had to be normalized.
func (s *Store) Load(ctx context.Context) error {
	var row Settings
	err := s.db.WithContext(ctx).First(&row, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.seed(ctx)
	}
	if err != nil {
		return err
	}

	cats, changed, err := normalizeCategories(row.Categories)
	if err != nil {
		return err
	}

	var cols []TableColumn
	if len(row.TableColumns) > 0 {
		if err := json.Unmarshal(row.TableColumns, &cols); err != nil {
			return err
		}
	}

	doc := Document{Categories: cats, Columns: cols, Version: row.Version}
	if changed {
		return s.persist(ctx, doc, row.Version)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

func (s *Store) seed(ctx context.Context) error {
	doc := DefaultDocument()
	catsJSON, err := json.Marshal(doc.Categories)
	if err != nil {
		return err
	}
	colsJSON, err := json.Marshal(doc.Columns)
	if err != nil {
		return err
	}
	row := Settings{
		ID:           settingsRowID,
		Categories:   catsJSON,
		TableColumns: colsJSON,
		Version:      1,
		UpdatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	doc.Version = 1
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Save overwrites the whole document. baseVersion must match the stored
// version or the write is rejected with a conflict, so a concurrent admin
// edit cannot be silently clobbered.
func (s *Store) Save(ctx context.Context, categories map[string]CategoryDefinition, columns []TableColumn, baseVersion int64) error {
	if _, ok := categories[PrimaryCategoryKey]; !ok {
		return apperr.InvalidErr("The primary classification cannot be removed.", nil)
	}
	return s.persist(ctx, Document{Categories: categories, Columns: columns, Version: baseVersion}, baseVersion)
}

func (s *Store) persist(ctx context.Context, doc Document, baseVersion int64) error {
	catsJSON, err := json.Marshal(doc.Categories)
	if err != nil {
		return err
	}
	colsJSON, err := json.Marshal(doc.Columns)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Model(&Settings{}).
		Where("id = ? AND version = ?", settingsRowID, baseVersion).
		Updates(map[string]any{
			"categories":    catsJSON,
			"table_columns": colsJSON,
			"version":       baseVersion + 1,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ConflictErr("Settings were changed by another session. Reload and try again.")
	}

	doc.Version = baseVersion + 1
	s.mu.Lock()
	s.doc = doc.Clone()
	s.mu.Unlock()
	return nil
}

// AddCategory declares a new category key with an empty value list.
func (s *Store) AddCategory(ctx context.Context, key, label string) error {
	key = strings.TrimSpace(key)
	label = strings.TrimSpace(label)
	if key == "" || label == "" {
		return apperr.InvalidErr("Category key and label are required.", nil)
	}
	if !colid.Valid(key) {
		return apperr.InvalidErr("Category key may only contain lowercase letters and digits.", nil)
	}

	doc := s.Snapshot()
	if _, exists := doc.Categories[key]; exists {
		return apperr.ConflictErr("A category with this key already exists.")
	}
	doc.Categories[key] = CategoryDefinition{Label: label, Values: []string{}}
	return s.persist(ctx, doc, doc.Version)
}

// DeleteCategory removes a whole category key. Existing product records
// keep their old selections; orphaned values simply stop matching filters.
func (s *Store) DeleteCategory(ctx context.Context, key string) error {
	if key == PrimaryCategoryKey {
		return apperr.InvalidErr("The primary classification cannot be deleted.", nil)
	}
	doc := s.Snapshot()
	if _, exists := doc.Categories[key]; !exists {
		return apperr.NotFoundErr("Category not found.")
	}
	delete(doc.Categories, key)
	return s.persist(ctx, doc, doc.Version)
}

func (s *Store) AddCategoryValue(ctx context.Context, key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return apperr.InvalidErr("Category value must not be blank.", nil)
	}
	doc := s.Snapshot()
	def, exists := doc.Categories[key]
	if !exists {
		return apperr.NotFoundErr("Category not found.")
	}
	for _, v := range def.Values {
		if v == value {
			return apperr.ConflictErr("This value already exists in the category.")
		}
	}
	def.Values = append(def.Values, value)
	doc.Categories[key] = def
	return s.persist(ctx, doc, doc.Version)
}

func (s *Store) DeleteCategoryValue(ctx context.Context, key, value string) error {
	doc := s.Snapshot()
	def, exists := doc.Categories[key]
	if !exists {
		return apperr.NotFoundErr("Category not found.")
	}
	kept := def.Values[:0]
	found := false
	for _, v := range def.Values {
		if v == value {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		return apperr.NotFoundErr("Value not found in category.")
	}
	def.Values = kept
	doc.Categories[key] = def
	return s.persist(ctx, doc, doc.Version)
}

// AddColumn derives the column id from the label and appends the column.
// Ordering is insertion order and dictates the rendered table order.
func (s *Store) AddColumn(ctx context.Context, label, placeholder string) (TableColumn, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return TableColumn{}, apperr.InvalidErr("Column label is required.", nil)
	}

	id := colid.FromLabel(label)
	doc := s.Snapshot()
	if _, exists := doc.ColumnByID(id); exists {
		return TableColumn{}, apperr.ConflictErr("A column with this id already exists.")
	}

	col := TableColumn{ID: id, Label: label, Placeholder: strings.TrimSpace(placeholder)}
	doc.Columns = append(doc.Columns, col)
	if err := s.persist(ctx, doc, doc.Version); err != nil {
		return TableColumn{}, err
	}
	return col, nil
}

// DeleteColumn removes a column definition. Values already saved under the
// column id stay on product records untouched.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	doc := s.Snapshot()
	kept := doc.Columns[:0]
	found := false
	for _, col := range doc.Columns {
		if col.ID == id {
			found = true
			continue
		}
		kept = append(kept, col)
	}
	if !found {
		return apperr.NotFoundErr("Column not found.")
	}
	doc.Columns = kept
	return s.persist(ctx, doc, doc.Version)
}

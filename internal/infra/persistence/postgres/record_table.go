// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"logistics/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// tableDef describes one record kind: how it maps to its model, which
// associations its read shape expands and which list filters it accepts.
type tableDef[M any, R any, D any] struct {
	kind         string
	preloads     []string
	searchColumn string
	orderings    map[string]string
	recID        func(*M) int64
	toModel      func(*R) *M
	toRecord     func(*M) *R
	toDetail     func(*M) *D
}

// recordTable implements repository.RecordRepository for any kind described by a tableDef.
type recordTable[M any, R any, D any] struct {
	db  *gorm.DB
	def tableDef[M, R, D]
}

func newRecordTable[M any, R any, D any](db *gorm.DB, def tableDef[M, R, D]) *recordTable[M, R, D] {
	return &recordTable[M, R, D]{db: db, def: def}
}

// Create inserts the record and reads it back from the primary so the caller sees the stored row.
func (t *recordTable[M, R, D]) Create(ctx context.Context, record *R) (*D, error) {
	m := t.def.toModel(record)

	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, translateError(err, "failed to create "+t.def.kind)
	}

	return t.findDetail(ctx, t.db.Clauses(dbresolver.Write), t.def.recID(m))
}

func (t *recordTable[M, R, D]) FindByID(ctx context.Context, recID int64) (*D, error) {
	return t.findDetail(ctx, t.db, recID)
}

func (t *recordTable[M, R, D]) FindRecord(ctx context.Context, recID int64) (*R, error) {
	var m M
	if err := t.db.WithContext(ctx).Where("rec_id = ?", recID).Take(&m).Error; err != nil {
		return nil, translateError(err, "failed to find "+t.def.kind)
	}

	return t.def.toRecord(&m), nil
}

func (t *recordTable[M, R, D]) List(ctx context.Context, query repository.ListQuery) ([]*D, int64, error) {
	var total int64
	if err := t.filtered(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "failed to count "+t.def.kind+" records")
	}

	tx := t.filtered(ctx, query)
	if order, ok := t.def.orderings[query.Ordering]; ok {
		tx = tx.Order(order)
	}
	tx = tx.Order("rec_id ASC")
	for _, preload := range t.def.preloads {
		tx = tx.Preload(preload)
	}
	if query.PageSize > 0 {
		tx = tx.Offset(query.Offset()).Limit(query.PageSize)
	}

	var models []*M
	if err := tx.Find(&models).Error; err != nil {
		return nil, 0, translateError(err, "failed to list "+t.def.kind+" records")
	}

	details := make([]*D, 0, len(models))
	for _, m := range models {
		details = append(details, t.def.toDetail(m))
	}

	return details, total, nil
}

// Update overwrites every column except rec_id. Relationship fields are plain
// foreign-key columns here, so a dangling reference fails as a constraint violation.
func (t *recordTable[M, R, D]) Update(ctx context.Context, recID int64, record *R) (*D, error) {
	m := t.def.toModel(record)

	result := t.db.WithContext(ctx).
		Model(new(M)).
		Where("rec_id = ?", recID).
		Select("*").
		Omit("rec_id", clause.Associations).
		Updates(m)
	if result.Error != nil {
		return nil, translateError(result.Error, "failed to update "+t.def.kind)
	}
	if result.RowsAffected == 0 {
		return nil, translateError(gorm.ErrRecordNotFound, "failed to update "+t.def.kind)
	}

	return t.findDetail(ctx, t.db.Clauses(dbresolver.Write), recID)
}

// Delete removes the row. Dependent rows go with it through ON DELETE CASCADE.
func (t *recordTable[M, R, D]) Delete(ctx context.Context, recID int64) error {
	result := t.db.WithContext(ctx).Where("rec_id = ?", recID).Delete(new(M))
	if result.Error != nil {
		return translateError(result.Error, "failed to delete "+t.def.kind)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "failed to delete "+t.def.kind)
	}

	return nil
}

func (t *recordTable[M, R, D]) findDetail(ctx context.Context, db *gorm.DB, recID int64) (*D, error) {
	tx := db.WithContext(ctx)
	for _, preload := range t.def.preloads {
		tx = tx.Preload(preload)
	}

	var m M
	if err := tx.Where("rec_id = ?", recID).Take(&m).Error; err != nil {
		return nil, translateError(err, "failed to find "+t.def.kind)
	}

	return t.def.toDetail(&m), nil
}

func (t *recordTable[M, R, D]) filtered(ctx context.Context, query repository.ListQuery) *gorm.DB {
	tx := t.db.WithContext(ctx).Model(new(M))
	if search := strings.TrimSpace(query.Search); search != "" && t.def.searchColumn != "" {
		tx = tx.Where("LOWER("+t.def.searchColumn+") LIKE ? ESCAPE '\\'", containsPattern(search))
	}

	return tx
}

// containsPattern builds a lower-cased LIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))

	return "%" + escaped + "%"
}

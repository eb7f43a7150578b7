package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) Create(ctx context.Context, rec Record) (Record, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	row, err := rec.Encode()
	if err != nil {
		return Record{}, err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Replace writes the complete merged record over the existing row. The
// caller is responsible for carrying forward any fields it wants kept.
func (r *Repo) Replace(ctx context.Context, rec Record) error {
	rec.UpdatedAt = time.Now()
	row, err := rec.Encode()
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"name":           row.Name,
			"product_number": row.ProductNumber,
			"thumbnail":      row.Thumbnail,
			"detail_images":  row.DetailImages,
			"specs":          row.Specs,
			"specs_list":     row.SpecsList,
			"table_data":     row.TableData,
			"categories":     row.Categories,
			"marks":          row.Marks,
			"updated_at":     row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}

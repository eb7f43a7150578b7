package products

import (
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/ororso11/m-led/internal/modules/schema"
	"github.com/ororso11/m-led/internal/shared/apperr"
	"github.com/ororso11/m-led/internal/storage"
)

// SchemaSource provides the current dynamic schema snapshot.
type SchemaSource interface {
	Snapshot() schema.Document
}

// ImageFile is one uploaded image from the admin form.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmitInput carries the admin form fields for create and edit.
type SubmitInput struct {
	Name          string
	ProductNumber string
	Specs         string
	SpecsList     []string
	Categories    map[string]string
	TableValues   map[string]string // keyed by column id
	Marks         []Mark

	Thumbnail    *ImageFile
	DetailImages []ImageFile
}

// Service implements the admin editor: validation, image upload
// orchestration and the merged full-record write.
type Service struct {
	repo   *Repo
	store  *Store
	schema SchemaSource
	files  storage.Storage
}

func NewService(repo *Repo, store *Store, schemaSrc SchemaSource, files storage.Storage) *Service {
	return &Service{repo: repo, store: store, schema: schemaSrc, files: files}
}

// Create validates and appends a brand-new product. A thumbnail and at
// least one detail image are mandatory here, unlike in edit mode.
func (s *Service) Create(ctx context.Context, in SubmitInput) (Record, error) {
	fields := s.validate(in)
	if in.Thumbnail == nil {
		fields["thumbnail"] = "A thumbnail image is required."
	}
	if len(in.DetailImages) == 0 {
		fields["detailImages"] = "At least one detail image is required."
	}
	if len(fields) > 0 {
		return Record{}, apperr.InvalidErr("Please fill in the required fields.", fields)
	}

	thumbURL, detailURLs, err := s.uploadImages(ctx, in)
	if err != nil {
		return Record{}, err
	}

	doc := s.schema.Snapshot()
	rec := Record{
		Name:          strings.TrimSpace(in.Name),
		ProductNumber: strings.TrimSpace(in.ProductNumber),
		Thumbnail:     thumbURL,
		DetailImages:  detailURLs,
		Specs:         in.Specs,
		SpecsList:     orEmptySlice(in.SpecsList),
		TableData:     buildTableData(doc.Columns, in.TableValues, nil),
		Categories:    in.Categories,
		Marks:         in.Marks,
	}
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		if IsDuplicateKey(err) {
			return Record{}, apperr.ConflictErr("A product with this id already exists.")
		}
		return Record{}, apperr.Wrap(err)
	}

	_ = s.store.Reload(ctx)
	return created, nil
}

// Update writes the complete merged record over the existing one. Images
// not re-uploaded keep their existing URLs; table values saved under
// columns that have since been deleted or renamed are carried forward so
// an unrelated edit never destroys them.
func (s *Service) Update(ctx context.Context, id string, in SubmitInput) (Record, error) {
	if fields := s.validate(in); len(fields) > 0 {
		return Record{}, apperr.InvalidErr("Please fill in the required fields.", fields)
	}

	row, err := s.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, apperr.NotFoundErr("Product not found.")
	}
	if err != nil {
		return Record{}, apperr.Wrap(err)
	}
	prev := row.Decode()

	thumbURL, detailURLs, err := s.uploadImages(ctx, in)
	if err != nil {
		return Record{}, err
	}
	if thumbURL == "" {
		thumbURL = prev.Thumbnail
	}
	if len(detailURLs) == 0 {
		detailURLs = prev.DetailImages
	}

	doc := s.schema.Snapshot()
	rec := Record{
		ID:            prev.ID,
		Name:          strings.TrimSpace(in.Name),
		ProductNumber: strings.TrimSpace(in.ProductNumber),
		Thumbnail:     thumbURL,
		DetailImages:  detailURLs,
		Specs:         in.Specs,
		SpecsList:     orEmptySlice(in.SpecsList),
		TableData:     buildTableData(doc.Columns, in.TableValues, prev.TableData),
		Categories:    in.Categories,
		Marks:         in.Marks,
		CreatedAt:     prev.CreatedAt,
	}
	if err := s.repo.Replace(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, apperr.NotFoundErr("Product not found.")
		}
		return Record{}, apperr.Wrap(err)
	}

	_ = s.store.Reload(ctx)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err)
	}
	_ = s.store.Reload(ctx)
	return nil
}

func (s *Service) validate(in SubmitInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "Product name is required."
	}
	primary := strings.TrimSpace(in.Categories[schema.PrimaryCategoryKey])
	if primary == "" || primary == schema.AllValue {
		fields[schema.PrimaryCategoryKey] = "Select a product type."
	}
	return fields
}

// uploadImages uploads the thumbnail then each detail image one at a time.
// The first failure aborts the whole submit; images already uploaded are
// not rolled back.
func (s *Service) uploadImages(ctx context.Context, in SubmitInput) (string, []string, error) {
	var thumbURL string
	if in.Thumbnail != nil {
		res, err := s.files.Put(ctx, in.Thumbnail.Reader, storage.PutInput{
			Folder:      "thumbnails",
			Filename:    in.Thumbnail.Filename,
			ContentType: in.Thumbnail.ContentType,
			Size:        in.Thumbnail.Size,
		})
		if err != nil {
			return "", nil, &apperr.AppError{
				Kind: apperr.Internal, PublicMsg: "Image upload failed. No changes were saved.", Err: err,
			}
		}
		thumbURL = res.URL
	}

	var detailURLs []string
	for _, f := range in.DetailImages {
		res, err := s.files.Put(ctx, f.Reader, storage.PutInput{
			Folder:      "details",
			Filename:    f.Filename,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
		if err != nil {
			return "", nil, &apperr.AppError{
				Kind: apperr.Internal, PublicMsg: "Image upload failed. No changes were saved.", Err: err,
			}
		}
		detailURLs = append(detailURLs, res.URL)
	}
	return thumbURL, detailURLs, nil
}

// buildTableData keys the posted values by the current column ids while
// carrying forward prior values stored under ids no longer in the column
// set.
func buildTableData(columns []schema.TableColumn, posted, prev map[string]string) map[string]string {
	out := make(map[string]string, len(columns)+len(prev))
	for k, v := range prev {
		out[k] = v
	}
	for _, col := range columns {
		out[col.ID] = strings.TrimSpace(posted[col.ID])
	}
	return out
}

package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/domain/entity"
	repo "github.com/mitrabahan/backend/internal/domain/repository"
	"github.com/mitrabahan/backend/pkg/helpers"
)

var (
	ErrMissingImage    = errors.New("image reference is required")
	ErrRecordNotFound  = errors.New("record not found")
	ErrStorageDisabled = errors.New("object storage not configured")
)

// MaterialService owns supplier inventory listings.
type MaterialService struct {
	Materials repo.MaterialRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewMaterialService(materials repo.MaterialRepository, gcs *storage.Client, bucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *MaterialService {
	return &MaterialService{Materials: materials, GCS: gcs, GCSBucket: bucket, ES: es, ESIndex: esIndex, Logger: logger}
}

type CreateMaterialInput struct {
	Name        string
	Quantity    int
	Price       float64
	ImageURL    string
	Description string
}

type UpdateMaterialInput struct {
	Name        *string
	Quantity    *int
	Price       *float64
	ImageURL    *string
	Description *string
}

// UploadImage uploads a listing image and returns its public URL.
func (s *MaterialService) UploadImage(ctx context.Context, ownerID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrStorageDisabled
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("materials", ownerID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// Create persists a listing stamped with the owner's id. The owner's
// name and company are snapshotted now and never resynced.
func (s *MaterialService) Create(ctx context.Context, owner *entity.Account, in CreateMaterialInput) (*entity.Material, error) {
	if in.ImageURL == "" {
		return nil, ErrMissingImage
	}
	m := &entity.Material{
		Name:            in.Name,
		Quantity:        in.Quantity,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		Description:     in.Description,
		SupplierID:      owner.ID,
		SupplierName:    owner.Name,
		SupplierCompany: owner.Company,
	}
	if err := s.Materials.Create(ctx, m); err != nil {
		return nil, err
	}
	s.index(ctx, m)
	return m, nil
}

// ListOwn returns the caller's listings, newest first.
func (s *MaterialService) ListOwn(ctx context.Context, supplierID string) ([]*entity.Material, error) {
	return s.Materials.ListBySupplier(ctx, supplierID)
}

// ListAvailable returns every listing, newest first, for browsing roles.
func (s *MaterialService) ListAvailable(ctx context.Context) ([]*entity.Material, error) {
	return s.Materials.ListAll(ctx)
}

// Update mutates a listing the caller owns. A non-owner or a missing id
// both come back as ErrRecordNotFound.
func (s *MaterialService) Update(ctx context.Context, supplierID, id string, in UpdateMaterialInput) (*entity.Material, error) {
	m, err := s.Materials.Update(ctx, supplierID, id, repo.MaterialUpdate{
		Name:        in.Name,
		Quantity:    in.Quantity,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	s.index(ctx, m)
	return m, nil
}

// Delete removes a listing the caller owns, with the same fail-closed
// behavior as Update.
func (s *MaterialService) Delete(ctx context.Context, supplierID, id string) error {
	if err := s.Materials.Delete(ctx, supplierID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	s.deindex(ctx, id)
	return nil
}

func (s *MaterialService) index(ctx context.Context, m *entity.Material) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":               m.ID,
		"name":             m.Name,
		"description":      m.Description,
		"quantity":         m.Quantity,
		"price":            m.Price,
		"supplier_id":      m.SupplierID,
		"supplier_company": m.SupplierCompany,
		"created_at":       m.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: m.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("material_id", m.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("material_id", m.ID).Warn("es index response error")
	}
}

func (s *MaterialService) deindex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("material_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over name and description.
func (s *MaterialService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "supplier_company"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

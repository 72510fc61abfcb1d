package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/domain/entity"
	repo "github.com/mitrabahan/backend/internal/domain/repository"
	"github.com/mitrabahan/backend/pkg/helpers"
	"github.com/mitrabahan/backend/pkg/mailer"
)

var ErrMissingMaterial = errors.New("material reference is required")

// ProductService owns manufacturer products. Create is the finalize step
// of the client-driven purchase workflow: by the time it runs, the wallet
// transfer already happened (or did not; the backend cannot tell) and the
// supplied tx hash is stored as an opaque correlation string.
type ProductService struct {
	Products    repo.ProductRepository
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewProductService(products repo.ProductRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *ProductService {
	return &ProductService{Products: products, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

type CreateProductInput struct {
	MaterialID     string
	Name           string
	Quantity       int
	Price          float64
	ImageURL       string
	Description    string
	ExternalTxHash string
}

type UpdateProductInput struct {
	Name        *string
	Quantity    *int
	Price       *float64
	ImageURL    *string
	Description *string
}

// Create finalizes a purchase. Two calls with the same tx hash create
// two distinct products; deduplication on the hash is out of contract.
func (s *ProductService) Create(ctx context.Context, owner *entity.Account, in CreateProductInput) (*entity.Product, error) {
	if in.MaterialID == "" {
		return nil, ErrMissingMaterial
	}
	if in.ImageURL == "" {
		return nil, ErrMissingImage
	}
	p := &entity.Product{
		MaterialID:          in.MaterialID,
		Name:                in.Name,
		Quantity:            in.Quantity,
		Price:               in.Price,
		ImageURL:            in.ImageURL,
		Description:         in.Description,
		ManufacturerID:      owner.ID,
		ManufacturerName:    owner.Name,
		ManufacturerCompany: owner.Company,
		ExternalTxHash:      in.ExternalTxHash,
	}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.enqueueReceipt(ctx, owner, p)
	return p, nil
}

func (s *ProductService) ListOwn(ctx context.Context, manufacturerID string) ([]*entity.Product, error) {
	return s.Products.ListByManufacturer(ctx, manufacturerID)
}

func (s *ProductService) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	return s.Products.ListAll(ctx)
}

func (s *ProductService) Update(ctx context.Context, manufacturerID, id string, in UpdateProductInput) (*entity.Product, error) {
	p, err := s.Products.Update(ctx, manufacturerID, id, repo.ProductUpdate{
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
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, manufacturerID, id string) error {
	if err := s.Products.Delete(ctx, manufacturerID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *ProductService) enqueueReceipt(ctx context.Context, owner *entity.Account, p *entity.Product) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       owner.Email,
		Template: mailer.TemplateReceipt,
		Data: map[string]any{
			"ProductName": p.Name,
			"Company":     p.ManufacturerCompany,
			"TxHash":      p.ExternalTxHash,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", owner.Email).Warn("receipt mail enqueue failed")
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/types"
)

const (
	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = time.Hour
)

// Presigner issues time-limited object storage URLs. *config.S3Config satisfies it.
type Presigner interface {
	PresignUpload(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// BeanView is a bean together with a readable photo URL
type BeanView struct {
	models.Bean
	ImageURL string `json:"image_url,omitempty"`
}

// BeanService handles coffee bean operations
type BeanService struct {
	db      *gorm.DB
	storage Presigner
}

// NewBeanService creates a BeanService. storage may be nil, which disables photos.
func NewBeanService(db *gorm.DB, storage Presigner) *BeanService {
	return &BeanService{
		db:      db,
		storage: storage,
	}
}

// CreateBean creates a bean owned by userID
func (s *BeanService) CreateBean(ctx context.Context, userID uuid.UUID, req *types.CreateBeanRequest) (*models.Bean, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	bean := &models.Bean{
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		Roaster:    strings.TrimSpace(req.Roaster),
		Origin:     strings.TrimSpace(req.Origin),
		Process:    req.Process,
		RoastLevel: req.RoastLevel,
		RoastDate:  req.RoastDate,
		Notes:      req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(bean).Error; err != nil {
		return nil, storageErr("create bean", err)
	}
	return bean, nil
}

func (s *BeanService) getBean(ctx context.Context, id uuid.UUID) (*models.Bean, error) {
	var bean models.Bean
	if err := s.db.WithContext(ctx).First(&bean, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bean %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("get bean", err)
	}
	return &bean, nil
}

// GetBean retrieves a bean, including a download URL when it has a photo
func (s *BeanService) GetBean(ctx context.Context, id uuid.UUID) (*BeanView, error) {
	bean, err := s.getBean(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, bean), nil
}

// UpdateBean applies the non-nil fields of req. Only the owner may update.
func (s *BeanService) UpdateBean(ctx context.Context, userID, id uuid.UUID, req *types.UpdateBeanRequest) (*models.Bean, error) {
	bean, err := s.getBean(ctx, id)
	if err != nil {
		return nil, err
	}
	if bean.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		bean.Name = strings.TrimSpace(*req.Name)
	}
	if req.Roaster != nil {
		bean.Roaster = strings.TrimSpace(*req.Roaster)
	}
	if req.Origin != nil {
		bean.Origin = strings.TrimSpace(*req.Origin)
	}
	if req.Process != nil {
		bean.Process = *req.Process
	}
	if req.RoastLevel != nil {
		bean.RoastLevel = *req.RoastLevel
	}
	if req.RoastDate != nil {
		bean.RoastDate = req.RoastDate
	}
	if req.Notes != nil {
		bean.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(bean).Error; err != nil {
		return nil, storageErr("update bean", err)
	}
	return bean, nil
}

// DeleteBean soft-deletes a bean. Only the owner may delete.
func (s *BeanService) DeleteBean(ctx context.Context, userID, id uuid.UUID) error {
	bean, err := s.getBean(ctx, id)
	if err != nil {
		return err
	}
	if bean.UserID != userID {
		return ErrForbidden
	}
	if err := s.db.WithContext(ctx).Delete(bean).Error; err != nil {
		return storageErr("delete bean", err)
	}
	return nil
}

// ListBeans lists beans matching the filter, newest first
func (s *BeanService) ListBeans(ctx context.Context, filter types.BeanFilter) ([]BeanView, error) {
	query := s.db.WithContext(ctx).Model(&models.Bean{})
	if filter.Roaster != "" {
		query = query.Where("LOWER(roaster) = ?", strings.ToLower(filter.Roaster))
	}
	if filter.Origin != "" {
		query = query.Where("LOWER(origin) = ?", strings.ToLower(filter.Origin))
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var beans []models.Bean
	err := query.Order("created_at DESC").
		Limit(pageLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&beans).Error
	if err != nil {
		return nil, storageErr("list beans", err)
	}

	views := make([]BeanView, 0, len(beans))
	for i := range beans {
		views = append(views, *s.view(ctx, &beans[i]))
	}
	return views, nil
}

// AttachImage assigns a fresh object key to the bean and returns a URL the
// owner can PUT the photo to.
func (s *BeanService) AttachImage(ctx context.Context, userID, id uuid.UUID, contentType string) (*types.UploadURLResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	bean, err := s.getBean(ctx, id)
	if err != nil {
		return nil, err
	}
	if bean.UserID != userID {
		return nil, ErrForbidden
	}

	key := fmt.Sprintf("beans/%s/%s%s", bean.ID, uuid.NewString(), imageExtension(contentType))
	url, err := s.storage.PresignUpload(ctx, key, contentType, uploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(bean).Update("image_key", key).Error; err != nil {
		return nil, storageErr("attach bean image", err)
	}

	return &types.UploadURLResponse{
		UploadURL: url,
		ObjectKey: key,
		ExpiresAt: time.Now().Add(uploadURLTTL),
	}, nil
}

func (s *BeanService) view(ctx context.Context, bean *models.Bean) *BeanView {
	v := &BeanView{Bean: *bean}
	if bean.ImageKey == "" || s.storage == nil {
		return v
	}
	url, err := s.storage.PresignDownload(ctx, bean.ImageKey, downloadURLTTL)
	if err != nil {
		log.Printf("Failed to presign image for bean %s: %v", bean.ID, err)
		return v
	}
	v.ImageURL = url
	return v
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

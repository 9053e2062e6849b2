package services

import (
	"errors"

	"linkly/internal/models"
	"linkly/pkg/utils"

	"gorm.io/gorm"
)

const (
	// CodeLength is the fixed size of every short code.
	CodeLength = 8

	// maxCodeAttempts bounds the collision retry loop on creation.
	maxCodeAttempts = 5
)

type LinkService struct {
	db            *gorm.DB
	auditService  *AuditService
	codeGenerator func(int) string
}

func NewLinkService(db *gorm.DB, auditService *AuditService) *LinkService {
	return &LinkService{
		db:            db,
		auditService:  auditService,
		codeGenerator: utils.GenerateShortCode,
	}
}

// Create persists a new link under a freshly generated short code. Generation
// retries on collision up to maxCodeAttempts before giving up.
func (s *LinkService) Create(originalURL, ownerID, ip string) (*models.Link, error) {
	var shortCode string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate := s.codeGenerator(CodeLength)

		var existing models.Link
		err := s.db.Where("short_code = ?", candidate).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			shortCode = candidate
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if shortCode == "" {
		return nil, ErrCodeExhausted
	}

	link := models.Link{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		OwnerID:     ownerID,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}

	s.auditService.LogAction(&ownerID, "CREATE_LINK", link.ShortCode, map[string]interface{}{
		"original_url": originalURL,
	}, ip)

	return &link, nil
}

// ListByOwner returns every link owned by ownerID, store order.
func (s *LinkService) ListByOwner(ownerID string) ([]models.Link, error) {
	var links []models.Link
	if err := s.db.Where("owner_id = ?", ownerID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Resolve looks a link up by short code for the public redirect path.
func (s *LinkService) Resolve(shortCode string) (*models.Link, error) {
	var link models.Link
	err := s.db.Where("short_code = ?", shortCode).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// ResolveOwned looks a link up by short code, scoped to its owner. Unknown
// code and foreign code both come back as ErrLinkNotFound.
func (s *LinkService) ResolveOwned(shortCode, ownerID string) (*models.Link, error) {
	var link models.Link
	err := s.db.Where("short_code = ? AND owner_id = ?", shortCode, ownerID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// RecordClick bumps the click counter with a single UPDATE expression, so
// concurrent redirects on the same link never lose an increment.
func (s *LinkService) RecordClick(linkID string) error {
	return s.db.Model(&models.Link{}).
		Where("id = ?", linkID).
		UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error
}

// Delete removes a link if and only if requesterID owns it. A missing link
// and someone else's link are reported identically.
func (s *LinkService) Delete(linkID, requesterID, ip string) error {
	result := s.db.Where("id = ? AND owner_id = ?", linkID, requesterID).Delete(&models.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	s.auditService.LogAction(&requesterID, "DELETE_LINK", linkID, nil, ip)

	return nil
}

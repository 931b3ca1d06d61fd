package salon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/audit"
	domain "github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/models"
	"github.com/BruksfildServices01/salonq/internal/validators"
)

const MaxPhotoBytes = 5 << 20

var photoExt = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// PhotoStorage stores an object and returns a URL the app can load.
type PhotoStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// ======================================================
// BROWSE
// ======================================================

type ListSalons struct {
	repo domain.Repository
}

func NewListSalons(repo domain.Repository) *ListSalons {
	return &ListSalons{repo: repo}
}

func (uc *ListSalons) Execute(ctx context.Context) ([]models.Salon, error) {
	return uc.repo.ListSalons(ctx)
}

type GetSalon struct {
	repo domain.Repository
}

func NewGetSalon(repo domain.Repository) *GetSalon {
	return &GetSalon{repo: repo}
}

func (uc *GetSalon) Execute(ctx context.Context, id string) (*models.Salon, error) {
	return uc.repo.GetSalon(ctx, id)
}

// ======================================================
// OWNER
// ======================================================

type UpdateSalonInput struct {
	Name        *string
	Address     *string
	OpeningTime *string
	ClosingTime *string
}

// Manage groups the owner-only salon operations. Every call checks that
// ownerID owns salonID.
type Manage struct {
	repo   domain.Repository
	photos PhotoStorage
	audit  *audit.Dispatcher
	log    *zap.Logger

	newID func() string
}

func NewManage(repo domain.Repository, photos PhotoStorage, audit *audit.Dispatcher, log *zap.Logger) *Manage {
	return &Manage{repo: repo, photos: photos, audit: audit, log: log, newID: uuid.NewString}
}

func (uc *Manage) Get(ctx context.Context, ownerID, salonID string) (*models.Salon, error) {
	s, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanManage(s, ownerID); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *Manage) Update(ctx context.Context, ownerID, salonID string, in UpdateSalonInput) (*models.Salon, error) {
	s, err := uc.Get(ctx, ownerID, salonID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, httperr.ErrBusiness("name_required")
		}
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		s.Address = strings.TrimSpace(*in.Address)
	}
	if in.OpeningTime != nil {
		s.OpeningTime = *in.OpeningTime
	}
	if in.ClosingTime != nil {
		s.ClosingTime = *in.ClosingTime
	}
	if err := validateHours(s.OpeningTime, s.ClosingTime); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSalon(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   ownerID,
		Action:   audit.ActionSalonUpdated,
		Entity:   "salon",
		EntityID: s.ID,
	})
	return s, nil
}

func (uc *Manage) AddEmployee(ctx context.Context, ownerID, salonID, name, mobile string) (*models.Employee, error) {
	if _, err := uc.Get(ctx, ownerID, salonID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	normalized, ok := validators.NormalizeMobile(mobile)
	if name == "" || !ok {
		return nil, httperr.ErrBusiness("invalid_stylist")
	}

	e := &models.Employee{
		ID:           uc.newID(),
		Name:         name,
		MobileNumber: normalized,
		SalonID:      salonID,
	}
	if err := uc.repo.AddEmployee(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   ownerID,
		Action:   audit.ActionEmployeeAdded,
		Entity:   "employee",
		EntityID: e.ID,
	})
	return e, nil
}

func (uc *Manage) RemoveEmployee(ctx context.Context, ownerID, salonID, employeeID string) error {
	if _, err := uc.Get(ctx, ownerID, salonID); err != nil {
		return err
	}
	if err := uc.repo.RemoveEmployee(ctx, salonID, employeeID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   ownerID,
		Action:   audit.ActionEmployeeRemoved,
		Entity:   "employee",
		EntityID: employeeID,
	})
	return nil
}

func (uc *Manage) UploadPhoto(ctx context.Context, ownerID, salonID, contentType string, data []byte) (string, error) {
	if uc.photos == nil {
		return "", httperr.ErrBusiness("photo_storage_disabled")
	}
	if _, err := uc.Get(ctx, ownerID, salonID); err != nil {
		return "", err
	}

	ext, ok := photoExt[contentType]
	if !ok {
		return "", httperr.ErrBusiness("unsupported_photo_type")
	}
	if len(data) == 0 || len(data) > MaxPhotoBytes {
		return "", httperr.ErrBusiness("invalid_photo_size")
	}

	key := fmt.Sprintf("salons/%s/%s.%s", salonID, uc.newID(), ext)
	url, err := uc.photos.Put(ctx, key, contentType, data)
	if err != nil {
		uc.log.Error("UploadPhoto: storage failed", zap.String("salon_id", salonID), zap.Error(err))
		return "", err
	}

	if err := uc.repo.AddPhoto(ctx, salonID, url); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   ownerID,
		Action:   audit.ActionPhotoUploaded,
		Entity:   "salon",
		EntityID: salonID,
		Metadata: map[string]string{"url": url},
	})
	return url, nil
}

func validateHours(opening, closing string) error {
	open, err1 := time.Parse("15:04", opening)
	cl, err2 := time.Parse("15:04", closing)
	if err := errors.Join(err1, err2); err != nil {
		return httperr.ErrBusiness("invalid_hours")
	}
	if !open.Before(cl) {
		return httperr.ErrBusiness("invalid_hours")
	}
	return nil
}

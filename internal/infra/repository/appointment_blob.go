package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/models"
)

func AppointmentsKey(userID string) string {
	return "appointments_" + userID
}

func SlotIndexKey(employeeID, date string) string {
	return fmt.Sprintf("slotindex_%s_%s", employeeID, date)
}

// AppointmentBlobRepository keeps each user's appointments as one JSON
// array and a per provider/day index of held start times. Every
// read-modify-write runs under a single mutex.
type AppointmentBlobRepository struct {
	store   blobstore.Store
	latency time.Duration

	mu sync.Mutex
}

func NewAppointmentBlobRepository(store blobstore.Store, latency time.Duration) *AppointmentBlobRepository {
	return &AppointmentBlobRepository{store: store, latency: latency}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentBlobRepository) ListForUser(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.load(ctx, userID)
}

func (r *AppointmentBlobRepository) BookedStarts(
	ctx context.Context,
	employeeID string,
	date string,
) (map[string]string, error) {
	return r.loadIndex(ctx, employeeID, date)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentBlobRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.wait(ctx); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := r.loadIndex(ctx, ap.EmployeeID, ap.Date)
	if err != nil {
		return err
	}
	if holder, taken := index[ap.TimeSlot.StartTime]; taken {
		return fmt.Errorf("%w: %s %s %s held by %s", domain.ErrSlotTaken, ap.EmployeeID, ap.Date, ap.TimeSlot.StartTime, holder)
	}

	list, err := r.load(ctx, ap.CustomerID)
	if err != nil {
		return err
	}
	for _, existing := range list {
		if existing.ID == ap.ID {
			return fmt.Errorf("duplicate appointment id %s", ap.ID)
		}
	}

	// Reserve the slot before the list write so a failed write can never
	// leave a stored appointment without its index entry.
	index[ap.TimeSlot.StartTime] = ap.ID
	if err := r.saveIndex(ctx, ap.EmployeeID, ap.Date, index); err != nil {
		return err
	}

	if err := r.save(ctx, ap.CustomerID, append(list, *ap)); err != nil {
		if rbErr := r.release(ctx, *ap); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return nil
}

func (r *AppointmentBlobRepository) Update(
	ctx context.Context,
	userID string,
	appointmentID string,
	mutate domain.MutateFunc,
) (*models.Appointment, error) {

	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list {
		if list[i].ID == appointmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, appointmentID)
	}

	ap := list[idx]
	held := domain.HoldsSlot(&ap)

	changed, err := mutate(&ap)
	if err != nil {
		return nil, err
	}
	if !changed {
		// A previous release may have failed after the list write; the
		// retry finishes it.
		if !domain.HoldsSlot(&ap) {
			if err := r.release(ctx, ap); err != nil {
				return nil, err
			}
		}
		return &ap, nil
	}

	list[idx] = ap
	if err := r.save(ctx, userID, list); err != nil {
		return nil, err
	}

	if held && !domain.HoldsSlot(&ap) {
		if err := r.release(ctx, ap); err != nil {
			return nil, err
		}
	}
	return &ap, nil
}

// release drops ap's index entry if ap is still the holder.
func (r *AppointmentBlobRepository) release(ctx context.Context, ap models.Appointment) error {
	index, err := r.loadIndex(ctx, ap.EmployeeID, ap.Date)
	if err != nil {
		return err
	}
	if index[ap.TimeSlot.StartTime] != ap.ID {
		return nil
	}
	delete(index, ap.TimeSlot.StartTime)
	return r.saveIndex(ctx, ap.EmployeeID, ap.Date, index)
}

// --------------------------------------------------
// Blob codec
// --------------------------------------------------

func (r *AppointmentBlobRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}
	t := time.NewTimer(r.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *AppointmentBlobRepository) load(ctx context.Context, userID string) ([]models.Appointment, error) {
	key := AppointmentsKey(userID)
	list := []models.Appointment{}
	if err := r.getJSON(ctx, key, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Appointment{}
	}
	return list, nil
}

func (r *AppointmentBlobRepository) save(ctx context.Context, userID string, list []models.Appointment) error {
	return r.setJSON(ctx, AppointmentsKey(userID), list)
}

func (r *AppointmentBlobRepository) loadIndex(ctx context.Context, employeeID, date string) (map[string]string, error) {
	index := map[string]string{}
	if err := r.getJSON(ctx, SlotIndexKey(employeeID, date), &index); err != nil {
		return nil, err
	}
	if index == nil {
		index = map[string]string{}
	}
	return index, nil
}

func (r *AppointmentBlobRepository) saveIndex(ctx context.Context, employeeID, date string, index map[string]string) error {
	key := SlotIndexKey(employeeID, date)
	if len(index) == 0 {
		if err := r.store.Remove(ctx, key); err != nil {
			return &domain.StorageError{Op: "remove", Key: key, Err: err}
		}
		return nil
	}
	return r.setJSON(ctx, key, index)
}

func (r *AppointmentBlobRepository) getJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return &domain.StorageError{Op: "read", Key: key, Err: err}
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &domain.StorageError{Op: "decode", Key: key, Err: err}
	}
	return nil
}

func (r *AppointmentBlobRepository) setJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := r.store.Set(ctx, key, string(b)); err != nil {
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Compile-time checks
var (
	_ domain.Repository = (*AppointmentBlobRepository)(nil)
	_ domain.SlotIndex  = (*AppointmentBlobRepository)(nil)
)

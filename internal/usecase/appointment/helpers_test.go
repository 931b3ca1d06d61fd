package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/infra/repository"
	"github.com/BruksfildServices01/salonq/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeCatalog struct {
	salons map[string]models.Salon
}

func (f *fakeCatalog) GetSalon(_ context.Context, id string) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, salon.ErrNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) GetEmployee(_ context.Context, id string) (*models.Employee, error) {
	for _, s := range f.salons {
		for _, e := range s.Employees {
			if e.ID == id {
				return &e, nil
			}
		}
	}
	return nil, salon.ErrEmployeeNotFound
}

type recordedEvents struct {
	mu     sync.Mutex
	events []string
}

func (r *recordedEvents) AppointmentEvent(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

var (
	haircut = models.Service{ID: "service1", Name: "Hair Cutting", Price: 25, Duration: 30, SalonID: "1"}
	spa     = models.Service{ID: "service2", Name: "Hair Spa", Price: 40, Duration: 60, SalonID: "1"}
	keratin = models.Service{ID: "service3", Name: "Keratin Treatment", Price: 80, Duration: 120, SalonID: "1"}
)

// Monday 2026-03-30 09:00 UTC; the grid runs through 2026-04-05.
var testNow = time.Date(2026, 3, 30, 9, 0, 0, 0, time.UTC)

type env struct {
	repo    *repository.AppointmentBlobRepository
	catalog *fakeCatalog
	clock   fixedClock
	events  *recordedEvents
	log     *zap.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return &env{
		repo: repository.NewAppointmentBlobRepository(blobstore.NewMemory(), 0),
		catalog: &fakeCatalog{salons: map[string]models.Salon{
			"1": {
				ID:      "1",
				Name:    "The Sharp Side",
				OwnerID: "owner1",
				Employees: []models.Employee{
					{ID: "emp1", Name: "Nate Black", SalonID: "1"},
					{ID: "emp2", Name: "Ava Stone", SalonID: "1"},
				},
				Services: []models.Service{haircut, spa, keratin},
			},
		}},
		clock:  fixedClock{testNow},
		events: &recordedEvents{},
		log:    zap.NewNop(),
	}
}

func (e *env) booker() *BookAppointment {
	return NewBookAppointment(e.repo, e.catalog, e.clock, nil, e.events, e.log)
}

func (e *env) canceller(noop bool) *CancelAppointment {
	return NewCancelAppointment(e.repo, e.clock, nil, e.events, e.log, noop)
}

func (e *env) adder() *AddServiceToAppointment {
	return NewAddServiceToAppointment(e.repo, e.catalog, e.clock, nil, e.events, e.log)
}

func (e *env) drafts() *BookingDraft {
	oracle := domain.NewBookedOracle(e.repo, e.clock)
	return NewBookingDraft(domain.NewDraftRegistry(), e.catalog, oracle, e.clock, e.booker(), e.log)
}

func payload(user, employee, date, start string, services ...models.Service) *models.Appointment {
	return &models.Appointment{
		CustomerID: user,
		SalonID:    "1",
		EmployeeID: employee,
		Services:   services,
		Date:       date,
		TimeSlot: models.TimeSlot{
			ID:         domain.SlotID(employee, date, start),
			Date:       date,
			StartTime:  start,
			EmployeeID: employee,
		},
	}
}

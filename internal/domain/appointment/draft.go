package appointment

import (
	"sync"

	"github.com/BruksfildServices01/salonq/internal/models"
)

// Draft is a booking under assembly. Setters only touch their own field,
// except SetProvider, which drops a time slot held on another provider's grid.
type Draft struct {
	CustomerID    string           `json:"customerId,omitempty"`
	SalonID       string           `json:"salonId,omitempty"`
	EmployeeID    string           `json:"employeeId,omitempty"`
	Services      []models.Service `json:"services"`
	Date          string           `json:"date,omitempty"`
	TimeSlot      *models.TimeSlot `json:"timeSlot,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
}

func (d *Draft) Begin() {
	*d = Draft{Services: []models.Service{}}
}

func (d *Draft) SelectDate(date string) {
	d.Date = date
}

func (d *Draft) SelectTime(slot models.TimeSlot) {
	d.TimeSlot = &slot
}

// ToggleService adds svc when absent and removes it when present, matched
// by id. The remaining services keep their order.
func (d *Draft) ToggleService(svc models.Service) {
	for i, s := range d.Services {
		if s.ID == svc.ID {
			d.Services = append(d.Services[:i:i], d.Services[i+1:]...)
			return
		}
	}
	d.Services = append(d.Services, svc)
}

func (d *Draft) HasService(id string) bool {
	for _, s := range d.Services {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (d *Draft) SetProvider(employeeID string) {
	d.EmployeeID = employeeID
	if d.TimeSlot != nil && d.TimeSlot.EmployeeID != employeeID {
		d.TimeSlot = nil
	}
}

func (d *Draft) SetSalon(salonID string) {
	d.SalonID = salonID
}

func (d *Draft) SetCustomer(customerID string) {
	d.CustomerID = customerID
}

func (d *Draft) SetPaymentMethod(method string) {
	d.PaymentMethod = method
}

func (d *Draft) ComputeTotal() float64 {
	return models.SumServices(d.Services)
}

// Confirm turns a complete draft into an appointment payload and clears
// the draft. On a ValidationError the draft is left as it was.
func (d *Draft) Confirm() (*models.Appointment, error) {
	var fields []FieldError
	if d.Date == "" {
		fields = append(fields, FieldError{Field: "date", Message: "is required"})
	}
	if d.TimeSlot == nil {
		fields = append(fields, FieldError{Field: "timeSlot", Message: "is required"})
	} else if d.Date != "" && d.TimeSlot.Date != d.Date {
		fields = append(fields, FieldError{Field: "timeSlot", Message: "does not match date"})
	}
	if len(d.Services) == 0 {
		fields = append(fields, FieldError{Field: "services", Message: "at least one is required"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	employeeID := d.EmployeeID
	if employeeID == "" {
		employeeID = d.TimeSlot.EmployeeID
	}
	method := d.PaymentMethod
	if method == "" {
		method = PaymentCash
	}

	ap := &models.Appointment{
		CustomerID:    d.CustomerID,
		SalonID:       d.SalonID,
		EmployeeID:    employeeID,
		Services:      append([]models.Service(nil), d.Services...),
		Date:          d.Date,
		TimeSlot:      *d.TimeSlot,
		Status:        string(InitialStatus()),
		PaymentMethod: method,
		PaymentStatus: PaymentStatusPending,
		TotalAmount:   d.ComputeTotal(),
	}

	d.Discard()
	return ap, nil
}

func (d *Draft) Discard() {
	*d = Draft{}
}

// Clone returns a copy that shares no slices with d.
func (d *Draft) Clone() Draft {
	c := *d
	c.Services = append([]models.Service{}, d.Services...)
	if d.TimeSlot != nil {
		ts := *d.TimeSlot
		c.TimeSlot = &ts
	}
	return c
}

// ===============================
// Registry
// ===============================

// DraftRegistry keeps at most one draft per user in memory.
type DraftRegistry struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewDraftRegistry() *DraftRegistry {
	return &DraftRegistry{drafts: map[string]*Draft{}}
}

// Begin replaces any existing draft for userID with an empty one.
func (r *DraftRegistry) Begin(userID string, init func(d *Draft)) Draft {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := &Draft{}
	d.Begin()
	if init != nil {
		init(d)
	}
	r.drafts[userID] = d
	return d.Clone()
}

func (r *DraftRegistry) Get(userID string) (Draft, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[userID]
	if !ok {
		return Draft{}, false
	}
	return d.Clone(), true
}

// Update applies fn to the user's draft. The stored draft only changes
// when fn succeeds.
func (r *DraftRegistry) Update(userID string, fn func(d *Draft) error) (Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[userID]
	if !ok {
		return Draft{}, ErrNoDraft
	}

	work := d.Clone()
	if err := fn(&work); err != nil {
		return Draft{}, err
	}
	r.drafts[userID] = &work
	return work.Clone(), nil
}

func (r *DraftRegistry) Discard(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, userID)
}

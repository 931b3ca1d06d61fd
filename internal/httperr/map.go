package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/domain/salon"
	"github.com/BruksfildServices01/salonq/internal/domain/user"
)

type ValidationBody struct {
	HTTPError
	Fields []appointment.FieldError `json:"fields"`
}

// FromError writes the response for err. Storage causes are logged and
// never leave the process.
func FromError(c *gin.Context, err error, log *zap.Logger) {
	var verr *appointment.ValidationError
	var serr *appointment.StorageError
	var berr BusinessError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ValidationBody{
			HTTPError: HTTPError{Code: "validation_failed", Message: verr.Error()},
			Fields:    verr.Fields,
		})

	case errors.Is(err, appointment.ErrSlotTaken):
		Write(c, http.StatusConflict, "time_conflict", "That time slot was just booked.")
	case errors.Is(err, appointment.ErrSlotUnavailable):
		Write(c, http.StatusConflict, "slot_unavailable", "That time slot is not available.")
	case errors.Is(err, appointment.ErrAppointmentClosed),
		errors.Is(err, appointment.ErrInvalidTransition):
		Write(c, http.StatusConflict, "invalid_state", "The appointment can no longer be changed.")
	case errors.Is(err, appointment.ErrServiceNotOffered):
		BadRequest(c, "service_not_offered", "The salon does not offer that service.")

	case errors.Is(err, appointment.ErrNotFound):
		NotFound(c, "appointment_not_found", "Appointment not found.")
	case errors.Is(err, appointment.ErrNoDraft):
		NotFound(c, "no_booking_in_progress", "Start a booking first.")
	case errors.Is(err, salon.ErrNotFound):
		NotFound(c, "salon_not_found", "Salon not found.")
	case errors.Is(err, salon.ErrEmployeeNotFound):
		NotFound(c, "employee_not_found", "Stylist not found.")
	case errors.Is(err, user.ErrNotFound):
		NotFound(c, "user_not_found", "User not found.")

	case errors.Is(err, salon.ErrForbidden):
		Forbidden(c, "forbidden", "You cannot manage this salon.")
	case errors.Is(err, user.ErrMobileTaken):
		Write(c, http.StatusConflict, "mobile_already_registered", "That mobile number is already registered.")

	case errors.As(err, &serr):
		log.Error("storage failure", zap.String("op", serr.Op), zap.String("key", serr.Key), zap.Error(serr.Err))
		Write(c, http.StatusServiceUnavailable, "try_again", "Please try again.")

	case errors.As(err, &berr):
		BadRequest(c, berr.Code, berr.Code)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("request aborted", zap.String("path", c.FullPath()), zap.Error(err))
		Write(c, http.StatusServiceUnavailable, "try_again", "Please try again.")

	default:
		log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		Internal(c, "internal_error", "Something went wrong.")
	}
}

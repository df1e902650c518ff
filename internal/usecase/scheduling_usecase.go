package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-clinic-scheduling/internal/converter"
	"go-clinic-scheduling/internal/delivery/dto"
	"go-clinic-scheduling/internal/delivery/http/middleware"
	"go-clinic-scheduling/internal/domain/entity"
	"go-clinic-scheduling/internal/domain/repository"
	"go-clinic-scheduling/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidTimeFormat   = errors.New("invalid time format, use YYYY-MM-DD HH:MM")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrActorNotInContext   = errors.New("user not found in context")
)

// SchedulingUsecase is the facade collaborators call: booking, lifecycle
// transitions, per-role views, practitioner administration and the
// notification feed.
type SchedulingUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)

	// GetMyAppointments returns the logged-in patient's appointments.
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	// GetMySchedule returns the logged-in practitioner's appointments.
	GetMySchedule(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsForPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error)
	GetAppointmentsForPractitioner(ctx context.Context, practitionerID int64) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)

	AddPractitioner(ctx context.Context, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error)
	RemovePractitioner(ctx context.Context, practitionerID int64) error
	GetPractitioner(ctx context.Context, practitionerID int64) (*dto.PractitionerResponse, error)
	ListPractitioners(ctx context.Context) (*dto.PractitionerListResponse, error)

	// GetAvailability returns the slot catalogue minus slots holding a
	// scheduled appointment.
	GetAvailability(ctx context.Context, practitionerID int64) (*dto.AvailabilityResponse, error)

	GetNotifications(ctx context.Context) (*dto.NotificationListResponse, error)
}

type schedulingUsecase struct {
	log              *logrus.Logger
	userRepo         repository.UserRepository
	practitionerRepo repository.PractitionerRepository
	appointmentRepo  repository.AppointmentRepository
	notifications    service.NotificationService
}

func NewSchedulingUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	practitionerRepo repository.PractitionerRepository,
	appointmentRepo repository.AppointmentRepository,
	notifications service.NotificationService,
) SchedulingUsecase {
	return &schedulingUsecase{
		log:              log,
		userRepo:         userRepo,
		practitionerRepo: practitionerRepo,
		appointmentRepo:  appointmentRepo,
		notifications:    notifications,
	}
}

// BookAppointment books a slot for the logged-in patient. The timestamp is
// taken as requested: no check against the slot catalogue and none against
// the past. The only gate is the exact-timestamp conflict inside the ledger.
func (u *schedulingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorNotInContext
	}

	patient, err := u.userRepo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	practitioner, err := u.practitionerRepo.FindByID(ctx, req.PractitionerID)
	if err != nil {
		return nil, err
	}

	at, err := time.ParseInLocation(dto.TimeLayout, req.Time, time.Local)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment := &entity.Appointment{
		PatientID:      patient.ID,
		PractitionerID: practitioner.ID,
		Time:           at,
		Reason:         req.Reason,
	}

	if err := u.appointmentRepo.Book(ctx, appointment); err != nil {
		if !errors.Is(err, repository.ErrSlotConflict) {
			u.log.Warnf("Failed to book appointment: %+v", err)
		}
		return nil, err
	}

	u.notifications.Record(ctx, entity.EventAppointmentBooked,
		fmt.Sprintf("Appointment #%d booked: %s with practitioner #%d at %s",
			appointment.ID, patient.Username, practitioner.ID, at.Format(dto.TimeLayout)))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) CancelAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	if err := u.authorizeTransition(ctx, appointmentID); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.Cancel(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	u.notifications.Record(ctx, entity.EventAppointmentCancelled,
		fmt.Sprintf("Appointment #%d cancelled", appointment.ID))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) CompleteAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	if err := u.authorizeTransition(ctx, appointmentID); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.Complete(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	u.notifications.Record(ctx, entity.EventAppointmentCompleted,
		fmt.Sprintf("Appointment #%d completed", appointment.ID))

	return converter.AppointmentToResponse(appointment), nil
}

// authorizeTransition verifies the acting user may mutate the appointment:
// patients their own bookings, practitioners their own schedule,
// administrators anything.
func (u *schedulingUsecase) authorizeTransition(ctx context.Context, appointmentID int64) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrActorNotInContext
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return ErrActorNotInContext
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	switch role {
	case entity.RoleAdmin:
		return nil
	case entity.RolePatient:
		if appointment.PatientID != actorID {
			return ErrAppointmentNotOwned
		}
		return nil
	case entity.RolePractitioner:
		practitioner, err := u.practitionerRepo.FindByUserID(ctx, actorID)
		if err != nil {
			return ErrAppointmentNotOwned
		}
		if appointment.PractitionerID != practitioner.ID {
			return ErrAppointmentNotOwned
		}
		return nil
	default:
		return ErrAppointmentNotOwned
	}
}

func (u *schedulingUsecase) GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorNotInContext
	}
	return u.GetAppointmentsForPatient(ctx, patientID)
}

func (u *schedulingUsecase) GetMySchedule(ctx context.Context) (*dto.AppointmentListResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrActorNotInContext
	}
	practitioner, err := u.practitionerRepo.FindByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.GetAppointmentsForPractitioner(ctx, practitioner.ID)
}

func (u *schedulingUsecase) GetAppointmentsForPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *schedulingUsecase) GetAppointmentsForPractitioner(ctx context.Context, practitionerID int64) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.ListForPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *schedulingUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

// AddPractitioner registers the practitioner as both a user and a
// directory entry, and generates its fixed slot catalogue.
func (u *schedulingUsecase) AddPractitioner(ctx context.Context, req *dto.CreatePractitionerRequest) (*dto.PractitionerResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Role:         entity.RolePractitioner,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}

	if err := u.userRepo.Register(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUsernameTaken) {
			u.log.Warnf("Failed to register practitioner user: %+v", err)
		}
		return nil, err
	}

	practitioner := &entity.Practitioner{
		UserID:         user.ID,
		Specialization: req.Specialization,
		Slots:          entity.GenerateSlotCatalogue(time.Now()),
	}

	if err := u.practitionerRepo.Add(ctx, practitioner); err != nil {
		u.log.Warnf("Failed to add practitioner: %+v", err)
		return nil, err
	}

	u.notifications.Record(ctx, entity.EventPractitionerAdded,
		fmt.Sprintf("Practitioner added: %s (%s)", user.FullName(), practitioner.Specialization))

	return converter.PractitionerToResponse(practitioner, user), nil
}

// RemovePractitioner removes the directory entry. Removal is refused while
// the practitioner still has scheduled appointments; cancelled and
// completed history keeps referencing the removed id.
func (u *schedulingUsecase) RemovePractitioner(ctx context.Context, practitionerID int64) error {
	appointments, err := u.appointmentRepo.ListForPractitioner(ctx, practitionerID)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].IsScheduled() {
			return repository.ErrPractitionerBusy
		}
	}

	if err := u.practitionerRepo.Remove(ctx, practitionerID); err != nil {
		return err
	}

	u.notifications.Record(ctx, entity.EventPractitionerRemoved,
		fmt.Sprintf("Practitioner #%d removed", practitionerID))

	return nil
}

func (u *schedulingUsecase) GetPractitioner(ctx context.Context, practitionerID int64) (*dto.PractitionerResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, practitioner.UserID)
	if err != nil {
		// Directory entry without its user record; expose what exists.
		user = nil
	}

	return converter.PractitionerToResponse(practitioner, user), nil
}

func (u *schedulingUsecase) ListPractitioners(ctx context.Context) (*dto.PractitionerListResponse, error) {
	practitioners, err := u.practitionerRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PractitionerResponse, 0, len(practitioners))
	for i := range practitioners {
		user, err := u.userRepo.FindByID(ctx, practitioners[i].UserID)
		if err != nil {
			user = nil
		}
		responses = append(responses, *converter.PractitionerToResponse(&practitioners[i], user))
	}

	return &dto.PractitionerListResponse{
		Practitioners: responses,
		Total:         len(responses),
	}, nil
}

func (u *schedulingUsecase) GetAvailability(ctx context.Context, practitionerID int64) (*dto.AvailabilityResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	available := make([]time.Time, 0, len(practitioner.Slots))
	for _, slot := range practitioner.Slots {
		booked, err := u.appointmentRepo.ScheduledAt(ctx, practitioner.ID, slot)
		if err != nil {
			return nil, err
		}
		if !booked {
			available = append(available, slot)
		}
	}

	return &dto.AvailabilityResponse{
		PractitionerID: practitioner.ID,
		AvailableSlots: converter.FormatSlots(available),
	}, nil
}

func (u *schedulingUsecase) GetNotifications(ctx context.Context) (*dto.NotificationListResponse, error) {
	return converter.NotificationsToListResponse(u.notifications.All(ctx)), nil
}

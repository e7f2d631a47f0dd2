package main

import (
	"context"
	"net/url"
)

const (
	staffLoginPath   = "auth/login"
	patientLoginPath = "patient/auth/login"
)

/**************************
 ******* Staff API ********
 **************************/

// StaffAPI groups the staff/admin endpoints. Every method maps to one HTTP
// call and returns the raw response.
type StaffAPI struct {
	Auth         StaffAuthAPI
	Appointments AppointmentsAPI
	Patients     PatientsAPI
	Reports      ReportsAPI
	Availability AvailabilityAPI
	Settings     SettingsAPI
}

func NewStaffAPI(c *APIClient) *StaffAPI {
	return &StaffAPI{
		Auth:         StaffAuthAPI{c},
		Appointments: AppointmentsAPI{c},
		Patients:     PatientsAPI{c},
		Reports:      ReportsAPI{c},
		Availability: AvailabilityAPI{c},
		Settings:     SettingsAPI{c},
	}
}

type StaffAuthAPI struct{ c *APIClient }

func (a StaffAuthAPI) Login(ctx context.Context, credentials any) (*Response, error) {
	return a.c.post(ctx, staffLoginPath, credentials)
}

func (a StaffAuthAPI) Logout(ctx context.Context) (*Response, error) {
	return a.c.post(ctx, "auth/logout", nil)
}

func (a StaffAuthAPI) Profile(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "auth/profile", nil)
}

func (a StaffAuthAPI) UpdateProfile(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "auth/profile", data)
}

func (a StaffAuthAPI) ChangePassword(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "auth/change-password", data)
}

func (a StaffAuthAPI) Refresh(ctx context.Context, refreshToken string) (*Response, error) {
	return a.c.post(ctx, "auth/refresh", map[string]string{"refreshToken": refreshToken})
}

type AppointmentsAPI struct{ c *APIClient }

func (a AppointmentsAPI) List(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "appointments", query)
}

func (a AppointmentsAPI) Today(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "appointments/today", nil)
}

func (a AppointmentsAPI) Get(ctx context.Context, id string) (*Response, error) {
	return a.c.get(ctx, "appointments/"+url.PathEscape(id), nil)
}

func (a AppointmentsAPI) Create(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "appointments", data)
}

func (a AppointmentsAPI) Update(ctx context.Context, id string, data any) (*Response, error) {
	return a.c.put(ctx, "appointments/"+url.PathEscape(id), data)
}

func (a AppointmentsAPI) UpdateStatus(ctx context.Context, id, status string) (*Response, error) {
	return a.c.patch(ctx, "appointments/"+url.PathEscape(id)+"/status", map[string]string{"status": status})
}

func (a AppointmentsAPI) Delete(ctx context.Context, id string) (*Response, error) {
	return a.c.delete(ctx, "appointments/"+url.PathEscape(id))
}

func (a AppointmentsAPI) ApproveCancellation(ctx context.Context, id string) (*Response, error) {
	return a.c.post(ctx, "appointments/"+url.PathEscape(id)+"/cancellation/approve", nil)
}

func (a AppointmentsAPI) RejectCancellation(ctx context.Context, id, reason string) (*Response, error) {
	return a.c.post(ctx, "appointments/"+url.PathEscape(id)+"/cancellation/reject", map[string]string{"reason": reason})
}

func (a AppointmentsAPI) ApproveReschedule(ctx context.Context, id string, data any) (*Response, error) {
	return a.c.post(ctx, "appointments/"+url.PathEscape(id)+"/reschedule/approve", data)
}

func (a AppointmentsAPI) RejectReschedule(ctx context.Context, id, reason string) (*Response, error) {
	return a.c.post(ctx, "appointments/"+url.PathEscape(id)+"/reschedule/reject", map[string]string{"reason": reason})
}

type PatientsAPI struct{ c *APIClient }

func (a PatientsAPI) List(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "patients", query)
}

func (a PatientsAPI) Search(ctx context.Context, term string) (*Response, error) {
	return a.c.get(ctx, "patients/search", url.Values{"q": {term}})
}

func (a PatientsAPI) Get(ctx context.Context, id string) (*Response, error) {
	return a.c.get(ctx, "patients/"+url.PathEscape(id), nil)
}

func (a PatientsAPI) Create(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "patients", data)
}

func (a PatientsAPI) Update(ctx context.Context, id string, data any) (*Response, error) {
	return a.c.put(ctx, "patients/"+url.PathEscape(id), data)
}

func (a PatientsAPI) Delete(ctx context.Context, id string) (*Response, error) {
	return a.c.delete(ctx, "patients/"+url.PathEscape(id))
}

func (a PatientsAPI) Appointments(ctx context.Context, id string) (*Response, error) {
	return a.c.get(ctx, "patients/"+url.PathEscape(id)+"/appointments", nil)
}

type ReportsAPI struct{ c *APIClient }

func (a ReportsAPI) Dashboard(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "reports/dashboard", query)
}

func (a ReportsAPI) Appointments(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "reports/appointments", query)
}

func (a ReportsAPI) Patients(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "reports/patients", query)
}

func (a ReportsAPI) Export(ctx context.Context, kind string, query url.Values) (*Response, error) {
	return a.c.get(ctx, "reports/export/"+url.PathEscape(kind), query)
}

type AvailabilityAPI struct{ c *APIClient }

func (a AvailabilityAPI) Get(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "availability", query)
}

func (a AvailabilityAPI) Slots(ctx context.Context, date, doctor string) (*Response, error) {
	query := url.Values{"date": {date}}
	if doctor != "" {
		query.Set("doctor", doctor)
	}
	return a.c.get(ctx, "availability/slots", query)
}

func (a AvailabilityAPI) Update(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "availability", data)
}

func (a AvailabilityAPI) BlockDate(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "availability/blocked-dates", data)
}

func (a AvailabilityAPI) UnblockDate(ctx context.Context, id string) (*Response, error) {
	return a.c.delete(ctx, "availability/blocked-dates/"+url.PathEscape(id))
}

type SettingsAPI struct{ c *APIClient }

func (a SettingsAPI) Get(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "settings", nil)
}

func (a SettingsAPI) Update(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "settings", data)
}

/**************************
 ****** Patient API *******
 **************************/

// PatientAPI groups the patient-portal endpoints.
type PatientAPI struct {
	Auth    PatientAuthAPI
	Booking PatientBookingAPI
}

func NewPatientAPI(c *APIClient) *PatientAPI {
	return &PatientAPI{
		Auth:    PatientAuthAPI{c},
		Booking: PatientBookingAPI{c},
	}
}

type PatientAuthAPI struct{ c *APIClient }

func (a PatientAuthAPI) Login(ctx context.Context, credentials any) (*Response, error) {
	return a.c.post(ctx, patientLoginPath, credentials)
}

func (a PatientAuthAPI) Register(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "patient/auth/register", data)
}

func (a PatientAuthAPI) Profile(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "patient/auth/profile", nil)
}

func (a PatientAuthAPI) UpdateProfile(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "patient/auth/profile", data)
}

func (a PatientAuthAPI) ChangePassword(ctx context.Context, data any) (*Response, error) {
	return a.c.put(ctx, "patient/auth/change-password", data)
}

func (a PatientAuthAPI) Refresh(ctx context.Context, refreshToken string) (*Response, error) {
	return a.c.post(ctx, "patient/auth/refresh", map[string]string{"refreshToken": refreshToken})
}

func (a PatientAuthAPI) ForgotPassword(ctx context.Context, email string) (*Response, error) {
	return a.c.post(ctx, "patient/auth/forgot-password", map[string]string{"email": email})
}

func (a PatientAuthAPI) ResetPassword(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "patient/auth/reset-password", data)
}

type PatientBookingAPI struct{ c *APIClient }

func (a PatientBookingAPI) Doctors(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "patient/booking/doctors", nil)
}

func (a PatientBookingAPI) Services(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "patient/booking/services", nil)
}

func (a PatientBookingAPI) AvailableSlots(ctx context.Context, date, doctor string) (*Response, error) {
	query := url.Values{"date": {date}}
	if doctor != "" {
		query.Set("doctor", doctor)
	}
	return a.c.get(ctx, "patient/booking/available-slots", query)
}

func (a PatientBookingAPI) Book(ctx context.Context, data any) (*Response, error) {
	return a.c.post(ctx, "patient/booking/appointments", data)
}

func (a PatientBookingAPI) Appointments(ctx context.Context, query url.Values) (*Response, error) {
	return a.c.get(ctx, "patient/booking/appointments", query)
}

func (a PatientBookingAPI) Appointment(ctx context.Context, id string) (*Response, error) {
	return a.c.get(ctx, "patient/booking/appointments/"+url.PathEscape(id), nil)
}

func (a PatientBookingAPI) Cancel(ctx context.Context, id, reason string) (*Response, error) {
	return a.c.post(ctx, "patient/booking/appointments/"+url.PathEscape(id)+"/cancel", map[string]string{"reason": reason})
}

func (a PatientBookingAPI) Reschedule(ctx context.Context, id string, data any) (*Response, error) {
	return a.c.post(ctx, "patient/booking/appointments/"+url.PathEscape(id)+"/reschedule", data)
}

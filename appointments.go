package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// extractData strips the response envelope. A top-level "data" wrapper is
// removed first, then the first of keys present in the remaining object is
// returned. Bare arrays and objects are returned unchanged.
func extractData(body []byte, keys ...string) json.RawMessage {
	data := bytes.TrimSpace(body)
	if len(data) == 0 || data[0] != '{' {
		return data
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return data
	}

	if inner, ok := envelope["data"]; ok && !isNull(inner) {
		return extractData(inner, keys...)
	}

	for _, key := range keys {
		if inner, ok := envelope[key]; ok && !isNull(inner) {
			return bytes.TrimSpace(inner)
		}
	}
	return data
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseAppointments reads an appointment list from any of the envelope shapes
// the booking and staff endpoints use.
func parseAppointments(body []byte) ([]*Appointment, error) {
	data := extractData(body, "appointments", "items", "results", "appointment")
	if len(data) == 0 {
		return []*Appointment{}, nil
	}

	var appointments []*Appointment
	if data[0] == '{' {
		// Single appointment
		var appointment Appointment
		if err := json.Unmarshal(data, &appointment); err != nil {
			return nil, fmt.Errorf("error unmarshalling Appointment: %s", err)
		}
		appointments = append(appointments, &appointment)
	} else if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("error unmarshalling appointment list: %s", err)
	}

	// Deduplicate returned values
	appointments = removeDuplicates(appointments, func(a *Appointment) any {
		if a == nil || a.AppointmentID == "" {
			return a
		}
		return a.AppointmentID
	})

	// Drop null entries
	cleaned := make([]*Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil {
			cleaned = append(cleaned, a)
		}
	}
	return cleaned, nil
}

// AppointmentView is an appointment decorated for the dashboard.
type AppointmentView struct {
	*Appointment
	Presentation  StatusPresentation `json:"presentation"`
	DisplayDate   string             `json:"displayDate"`
	DisplayTime   string             `json:"displayTime"`
	IsUpcoming    bool               `json:"isUpcoming"`
	CanCancel     bool               `json:"canCancel"`
	CanReschedule bool               `json:"canReschedule"`
	Eligibility   string             `json:"eligibility"`
}

func (w *WindowEvaluator) View(a *Appointment) AppointmentView {
	result := w.Check(a)
	return AppointmentView{
		Appointment:   a,
		Presentation:  Classify(a.Status),
		DisplayDate:   formatDisplayDate(a.AppointmentDate),
		DisplayTime:   formatDisplayTime(a.AppointmentTime),
		IsUpcoming:    w.IsUpcoming(a.AppointmentDate, a.AppointmentTime),
		CanCancel:     result.Allowed(),
		CanReschedule: result.Allowed(),
		Eligibility:   result.String(),
	}
}

// Views decorates and orders appointments by date-time, soonest first.
// Unparseable entries sort last.
func (w *WindowEvaluator) Views(appointments []*Appointment) []AppointmentView {
	sorted := make([]*Appointment, len(appointments))
	copy(sorted, appointments)
	sortEvents(sorted, func(a *Appointment) time.Time {
		t, err := w.When(a)
		if err != nil {
			return time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		return t
	}, true)

	views := make([]AppointmentView, 0, len(sorted))
	for _, a := range sorted {
		views = append(views, w.View(a))
	}
	return views
}

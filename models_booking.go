package calcom

import "time"

// BookingReferenceEdit is the body of PATCH /bookings/references/{id}.
type BookingReferenceEdit struct {
	Type               Opt[string] `json:"type"`
	MeetingID          Opt[string] `json:"meetingId"`
	MeetingPassword    Opt[string] `json:"meetingPassword" nullable:"true"`
	ExternalCalendarID Opt[string] `json:"externalCalendarId" nullable:"true"`
	Deleted            Opt[bool]   `json:"deleted"`
	CredentialID       Opt[int64]  `json:"credentialId"`
}

func (BookingReferenceEdit) ModelName() string { return "BookingReferenceEdit" }

func (m BookingReferenceEdit) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *BookingReferenceEdit) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

// BookingReferenceCreate is the body of POST /booking-references.
type BookingReferenceCreate struct {
	Type               Opt[string] `json:"type" required:"true"`
	UID                Opt[string] `json:"uid" required:"true"`
	MeetingID          Opt[string] `json:"meetingId"`
	MeetingPassword    Opt[string] `json:"meetingPassword"`
	MeetingURL         Opt[string] `json:"meetingUrl"`
	BookingID          Opt[int64]  `json:"bookingId"`
	ExternalCalendarID Opt[string] `json:"externalCalendarId"`
	Deleted            Opt[bool]   `json:"deleted"`
	CredentialID       Opt[int64]  `json:"credentialId"`
}

func (BookingReferenceCreate) ModelName() string { return "BookingReferenceCreate" }

func (m BookingReferenceCreate) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *BookingReferenceCreate) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

// BookingCreate is the body of POST /bookings.
type BookingCreate struct {
	EventTypeID                Opt[int64]          `json:"eventTypeId" required:"true" doc:"ID of the event type to book"`
	Start                      Opt[time.Time]      `json:"start" required:"true" doc:"Start time of the Event"`
	End                        Opt[time.Time]      `json:"end" doc:"End time of the Event"`
	Responses                  Opt[map[string]any] `json:"responses" required:"true" doc:"Booking form responses"`
	Metadata                   Opt[map[string]any] `json:"metadata" required:"true" doc:"Any metadata associated with the booking"`
	TimeZone                   Opt[string]         `json:"timeZone" required:"true" doc:"TimeZone of the Attendee"`
	Language                   Opt[string]         `json:"language" required:"true" doc:"Language of the Attendee"`
	Title                      Opt[string]         `json:"title"`
	RecurringEventID           Opt[int64]          `json:"recurringEventId"`
	Description                Opt[string]         `json:"description"`
	Status                     Opt[string]         `json:"status" enum:"ACCEPTED,PENDING,CANCELLED,REJECTED"`
	SeatsPerTimeSlot           Opt[int64]          `json:"seatsPerTimeSlot"`
	SeatsShowAttendees         Opt[bool]           `json:"seatsShowAttendees"`
	SeatsShowAvailabilityCount Opt[bool]           `json:"seatsShowAvailabilityCount"`
	SMSReminderNumber          Opt[string]         `json:"smsReminderNumber"`
}

func (BookingCreate) ModelName() string { return "BookingCreate" }

func (m BookingCreate) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *BookingCreate) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

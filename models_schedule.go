package calcom

// ScheduleEdit is the body of PATCH /schedules/{id}.
type ScheduleEdit struct {
	Name     Opt[string] `json:"name" doc:"Name of the schedule"`
	TimeZone Opt[string] `json:"timeZone" doc:"The timezone for this schedule"`
}

func (ScheduleEdit) ModelName() string { return "ScheduleEdit" }

func (m ScheduleEdit) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *ScheduleEdit) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

// ScheduleCreate is the body of POST /schedules.
type ScheduleCreate struct {
	Name     Opt[string] `json:"name" required:"true" doc:"Name of the schedule"`
	TimeZone Opt[string] `json:"timeZone" required:"true" doc:"The timezone for this schedule"`
}

func (ScheduleCreate) ModelName() string { return "ScheduleCreate" }

func (m ScheduleCreate) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *ScheduleCreate) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

// DestinationCalendarEdit is the body of PATCH /destination-calendars/{id}.
type DestinationCalendarEdit struct {
	Integration Opt[string] `json:"integration" doc:"The integration"`
	ExternalID  Opt[string] `json:"externalId" doc:"The external ID of the integration"`
	EventTypeID Opt[int64]  `json:"eventTypeId" nullable:"true" doc:"The ID of the eventType it is associated with"`
	BookingID   Opt[int64]  `json:"bookingId" nullable:"true" doc:"The booking ID it is associated with"`
}

func (DestinationCalendarEdit) ModelName() string { return "DestinationCalendarEdit" }

func (m DestinationCalendarEdit) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *DestinationCalendarEdit) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

package calcom

// WebhookTrigger is an event that fires a webhook.
type WebhookTrigger string

const (
	TriggerBookingCreated     WebhookTrigger = "BOOKING_CREATED"
	TriggerBookingRescheduled WebhookTrigger = "BOOKING_RESCHEDULED"
	TriggerBookingCancelled   WebhookTrigger = "BOOKING_CANCELLED"
	TriggerMeetingEnded       WebhookTrigger = "MEETING_ENDED"
)

// WebhookTriggers lists every accepted trigger.
var WebhookTriggers = []WebhookTrigger{
	TriggerBookingCreated,
	TriggerBookingRescheduled,
	TriggerBookingCancelled,
	TriggerMeetingEnded,
}

// WebhookEdit is the body of PATCH /webhooks/{id}.
type WebhookEdit struct {
	SubscriberURL   Opt[string]         `json:"subscriberUrl" doc:"The URL to subscribe to this webhook"`
	EventTriggers   Opt[WebhookTrigger] `json:"eventTriggers" enum:"BOOKING_CREATED,BOOKING_RESCHEDULED,BOOKING_CANCELLED,MEETING_ENDED" doc:"The events which should trigger this webhook call"`
	Active          Opt[bool]           `json:"active" doc:"Whether the webhook is active and should trigger on associated trigger events"`
	PayloadTemplate Opt[string]         `json:"payloadTemplate" nullable:"true" doc:"The template of the webhook's payload"`
	EventTypeID     Opt[float64]        `json:"eventTypeId" nullable:"true" doc:"The event type ID if this webhook should be associated with only that event type"`
	Secret          Opt[string]         `json:"secret" nullable:"true" doc:"The secret to verify the authenticity of the received payload"`
}

func (WebhookEdit) ModelName() string { return "WebhookEdit" }

func (m WebhookEdit) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *WebhookEdit) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

// WebhookCreate is the body of POST /webhooks.
type WebhookCreate struct {
	SubscriberURL   Opt[string]         `json:"subscriberUrl" required:"true" doc:"The URL to subscribe to this webhook"`
	EventTriggers   Opt[WebhookTrigger] `json:"eventTriggers" required:"true" enum:"BOOKING_CREATED,BOOKING_RESCHEDULED,BOOKING_CANCELLED,MEETING_ENDED" doc:"The events which should trigger this webhook call"`
	Active          Opt[bool]           `json:"active" required:"true" doc:"Whether the webhook is active and should trigger on associated trigger events"`
	PayloadTemplate Opt[string]         `json:"payloadTemplate" doc:"The template of the webhook's payload"`
	EventTypeID     Opt[float64]        `json:"eventTypeId" doc:"The event type ID if this webhook should be associated with only that event type"`
	Secret          Opt[string]         `json:"secret" doc:"The secret to verify the authenticity of the received payload"`
}

func (WebhookCreate) ModelName() string { return "WebhookCreate" }

func (m WebhookCreate) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *WebhookCreate) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }

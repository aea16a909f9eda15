package calcom

import (
	"net/http"
)

// Object is the generic JSON object most operations respond with.
type Object = map[string]any

// declare adds the API-key requirement and the 401/404 no-content mapping
// shared by every operation.
func declare(id, method, path string, opts ...OperationOption) *Operation {
	base := []OperationOption{
		WithSecurity(APIKeyAuth),
		WithEmptyResponses(http.StatusUnauthorized, http.StatusNotFound),
	}
	return NewOperation(id, method, path, append(base, opts...)...)
}

func okObject(desc string) OperationOption {
	return WithResponse[Object](http.StatusOK, desc)
}

func createdObject(desc string) OperationOption {
	return WithResponse[Object](http.StatusCreated, desc)
}

var (
	idParam = Path("id", KindInt).Doc("ID of the resource")

	dateFromParam    = Query("dateFrom", KindDate).Doc("Start date of the availability window")
	dateToParam      = Query("dateTo", KindDate).Doc("End date of the availability window")
	eventTypeIDParam = Query("eventTypeId", KindInt).Doc("Event type to check availability for")
)

// Availability operations.
var (
	OpUserAvailability = declare("userAvailability", http.MethodGet, "/availability",
		WithSummary("Find user or team availability"),
		WithTags("availability"),
		WithParams(
			Query("userId", KindInt).Doc("ID of the user to fetch the availability for"),
			Query("username", KindString).Doc("username of the user to fetch the availability for"),
			dateFromParam,
			dateToParam,
			eventTypeIDParam,
		),
		okObject("OK"),
	)

	OpTeamAvailability = declare("teamAvailability", http.MethodGet, "/teams/{teamId}/availability",
		WithSummary("Find team availability"),
		WithTags("availability"),
		WithParams(
			Path("teamId", KindInt).Doc("ID of the team to fetch the availability for"),
			dateFromParam,
			dateToParam,
			eventTypeIDParam,
		),
		okObject("OK"),
	)
)

// Booking reference operations.
var (
	OpListBookingReferences = declare("listBookingReferences", http.MethodGet, "/booking-references",
		WithSummary("Find all booking references"),
		WithTags("booking-references"),
		okObject("OK"),
	)

	OpGetBookingReference = declare("getBookingReferenceById", http.MethodGet, "/booking-references/{id}",
		WithSummary("Find a booking reference"),
		WithTags("booking-references"),
		WithParams(idParam),
		okObject("OK"),
	)

	OpAddBookingReference = declare("addBookingReference", http.MethodPost, "/booking-references",
		WithSummary("Creates a new booking reference"),
		WithTags("booking-references"),
		WithRequestBody[BookingReferenceCreate](""),
		createdObject("Booking reference created"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpEditBookingReference = declare("editBookingReferenceById", http.MethodPatch, "/bookings/references/{id}",
		WithSummary("Edit an existing booking reference"),
		WithTags("booking-references"),
		WithParams(idParam),
		WithRequestBody[BookingReferenceEdit](""),
		okObject("OK"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpRemoveBookingReference = declare("removeBookingReferenceById", http.MethodDelete, "/booking-references/{id}",
		WithSummary("Remove an existing booking reference"),
		WithTags("booking-references"),
		WithParams(idParam),
		okObject("OK"),
	)
)

// Booking operations.
var (
	OpListBookings = declare("listBookings", http.MethodGet, "/bookings",
		WithSummary("Find all bookings"),
		WithTags("bookings"),
		WithParams(
			Query("userId", KindIntList).Doc("Filter bookings by the IDs of their users"),
			Query("attendeeEmail", KindStringList).Doc("Filter bookings by attendee email"),
			Query("attendeeName", KindStringList).Doc("Filter bookings by attendee name"),
		),
		okObject("OK"),
	)

	OpGetBooking = declare("getBookingById", http.MethodGet, "/bookings/{id}",
		WithSummary("Find a booking"),
		WithTags("bookings"),
		WithParams(idParam),
		okObject("OK"),
	)

	OpAddBooking = declare("addBooking", http.MethodPost, "/bookings",
		WithSummary("Creates a new booking"),
		WithTags("bookings"),
		WithRequestBody[BookingCreate](""),
		okObject("Booking(s) created successfully"),
		WithEmptyResponses(http.StatusBadRequest),
	)
)

// Destination calendar operations.
var (
	OpEditDestinationCalendar = declare("destinationCalendarsIdPatch", http.MethodPatch, "/destination-calendars/{id}",
		WithSummary("Edit an existing destination calendar"),
		WithTags("destination-calendars"),
		WithParams(idParam),
		WithRequestBody[DestinationCalendarEdit](""),
		okObject("OK"),
	)
)

// Membership operations. The path identifies a membership by the user and
// team it links.
var (
	membershipParams = WithParams(
		Path("userId", KindInt).Doc("Numeric userId of the membership to get"),
		Path("teamId", KindInt).Doc("Numeric teamId of the membership to get"),
	)

	OpListMemberships = declare("listMemberships", http.MethodGet, "/memberships",
		WithSummary("Find all memberships"),
		WithTags("memberships"),
		okObject("OK"),
	)

	OpAddMembership = declare("addMembership", http.MethodPost, "/memberships",
		WithSummary("Creates a new membership"),
		WithTags("memberships"),
		WithRequestBody[Object](""),
		createdObject("Membership created"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpGetMembership = declare("getMembershipById", http.MethodGet, "/memberships/{userId}_{teamId}",
		WithSummary("Find a membership by userID and teamID"),
		WithTags("memberships"),
		membershipParams,
		okObject("OK"),
	)

	OpEditMembership = declare("editMembershipById", http.MethodPatch, "/memberships/{userId}_{teamId}",
		WithSummary("Edit an existing membership"),
		WithTags("memberships"),
		membershipParams,
		WithRequestBody[Object](""),
		okObject("OK"),
	)

	OpRemoveMembership = declare("removeMembershipById", http.MethodDelete, "/memberships/{userId}_{teamId}",
		WithSummary("Remove an existing membership"),
		WithTags("memberships"),
		membershipParams,
		okObject("OK"),
	)
)

// Schedule operations.
var (
	OpListSchedules = declare("listSchedules", http.MethodGet, "/schedules",
		WithSummary("Find all schedules"),
		WithTags("schedules"),
		okObject("OK"),
	)

	OpGetSchedule = declare("getScheduleById", http.MethodGet, "/schedules/{id}",
		WithSummary("Find a schedule"),
		WithTags("schedules"),
		WithParams(idParam),
		okObject("OK"),
	)

	OpAddSchedule = declare("addSchedule", http.MethodPost, "/schedules",
		WithSummary("Creates a new schedule"),
		WithTags("schedules"),
		WithRequestBody[ScheduleCreate](""),
		okObject("OK"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpEditSchedule = declare("editScheduleById", http.MethodPatch, "/schedules/{id}",
		WithSummary("Edit an existing schedule"),
		WithTags("schedules"),
		WithParams(idParam),
		WithRequestBody[ScheduleEdit](""),
		okObject("OK"),
	)

	OpRemoveSchedule = declare("removeScheduleById", http.MethodDelete, "/schedules/{id}",
		WithSummary("Remove an existing schedule"),
		WithTags("schedules"),
		WithParams(idParam),
		okObject("OK"),
	)
)

// User operations.
var (
	OpGetUser = declare("getUserById", http.MethodGet, "/users/{id}",
		WithSummary("Find a user, returns your user if regular user"),
		WithTags("users"),
		WithParams(idParam),
		okObject("OK"),
	)

	OpEditUser = declare("editUserById", http.MethodPatch, "/users/{id}",
		WithSummary("Edit an existing user"),
		WithTags("users"),
		WithParams(idParam),
		WithRequestBody[UserEdit](""),
		okObject("OK"),
	)
)

// Webhook operations.
var (
	OpListWebhooks = declare("listWebhooks", http.MethodGet, "/webhooks",
		WithSummary("Find all webhooks"),
		WithTags("webhooks"),
		okObject("OK"),
	)

	OpGetWebhook = declare("getWebhookById", http.MethodGet, "/webhooks/{id}",
		WithSummary("Find a webhook"),
		WithTags("webhooks"),
		WithParams(idParam),
		okObject("OK"),
	)

	OpAddWebhook = declare("addWebhook", http.MethodPost, "/webhooks",
		WithSummary("Creates a new webhook"),
		WithTags("webhooks"),
		WithRequestBody[WebhookCreate](""),
		createdObject("OK, webhook created"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpEditWebhook = declare("editWebhookById", http.MethodPatch, "/webhooks/{id}",
		WithSummary("Edit an existing webhook"),
		WithTags("webhooks"),
		WithParams(idParam),
		WithRequestBody[WebhookEdit](""),
		okObject("OK, webhook edited successfully"),
		WithEmptyResponses(http.StatusBadRequest),
	)

	OpRemoveWebhook = declare("removeWebhookById", http.MethodDelete, "/webhooks/{id}",
		WithSummary("Remove an existing webhook"),
		WithTags("webhooks"),
		WithParams(idParam),
		okObject("OK, webhook removed successfully"),
	)
)

// Catalog is an ordered operation table.
type Catalog []*Operation

// Operations lists every operation the client supports, in declaration order.
var Operations = Catalog{
	OpUserAvailability,
	OpTeamAvailability,
	OpListBookingReferences,
	OpGetBookingReference,
	OpAddBookingReference,
	OpEditBookingReference,
	OpRemoveBookingReference,
	OpListBookings,
	OpGetBooking,
	OpAddBooking,
	OpEditDestinationCalendar,
	OpListMemberships,
	OpAddMembership,
	OpGetMembership,
	OpEditMembership,
	OpRemoveMembership,
	OpListSchedules,
	OpGetSchedule,
	OpAddSchedule,
	OpEditSchedule,
	OpRemoveSchedule,
	OpGetUser,
	OpEditUser,
	OpListWebhooks,
	OpGetWebhook,
	OpAddWebhook,
	OpEditWebhook,
	OpRemoveWebhook,
}

// Lookup returns the operation with the given ID.
func (c Catalog) Lookup(id string) (*Operation, bool) {
	for _, op := range c {
		if op.ID == id {
			return op, true
		}
	}
	return nil, false
}

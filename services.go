package calcom

import (
	"context"
	"net/http"
)

// Endpoint is a typed handle on one catalog operation. P builds the call
// arguments and R is the decoded success body.
type Endpoint[P Params, R any] struct {
	client *Client
	op     *Operation
}

func endpoint[P Params, R any](c *Client, op *Operation) Endpoint[P, R] {
	return Endpoint[P, R]{client: c, op: op}
}

// Operation returns the catalog entry behind the endpoint.
func (e Endpoint[P, R]) Operation() *Operation { return e.op }

// Build serializes p without sending anything.
func (e Endpoint[P, R]) Build(p P, opts ...CallOption) (*RequestDescriptor, error) {
	co := newCallOptions(opts)
	return e.op.build(e.client.cfg, e.client.codecs, p.Args(), co.contentType)
}

// Do calls the endpoint and returns the decoded body.
func (e Endpoint[P, R]) Do(ctx context.Context, p P, opts ...CallOption) (R, error) {
	return Call[R](ctx, e.client, e.op, p.Args(), opts...)
}

// DoWithInfo calls the endpoint and returns the decoded body with the status
// code and headers.
func (e Endpoint[P, R]) DoWithInfo(ctx context.Context, p P, opts ...CallOption) (*Response[R], error) {
	return CallWithInfo[R](ctx, e.client, e.op, p.Args(), opts...)
}

// DoRaw calls the endpoint and returns the unprocessed response. The caller
// must close the body.
func (e Endpoint[P, R]) DoRaw(ctx context.Context, p P, opts ...CallOption) (*http.Response, error) {
	return CallRaw(ctx, e.client, e.op, p.Args(), opts...)
}

// AvailabilityService queries free and busy time.
type AvailabilityService struct {
	User Endpoint[UserAvailabilityParams, Object]
	Team Endpoint[TeamAvailabilityParams, Object]
}

// BookingReferencesService manages the external references of bookings.
type BookingReferencesService struct {
	List   Endpoint[NoParams, Object]
	Get    Endpoint[ByID, Object]
	Create Endpoint[Create[BookingReferenceCreate], Object]
	Edit   Endpoint[Edit[BookingReferenceEdit], Object]
	Remove Endpoint[ByID, Object]
}

// BookingsService manages bookings.
type BookingsService struct {
	List   Endpoint[ListBookingsParams, Object]
	Get    Endpoint[ByID, Object]
	Create Endpoint[Create[BookingCreate], Object]
}

// DestinationCalendarsService manages destination calendars.
type DestinationCalendarsService struct {
	Edit Endpoint[Edit[DestinationCalendarEdit], Object]
}

// MembershipsService manages team memberships.
type MembershipsService struct {
	List   Endpoint[NoParams, Object]
	Create Endpoint[Create[Object], Object]
	Get    Endpoint[MembershipKey, Object]
	Edit   Endpoint[EditMembership, Object]
	Remove Endpoint[MembershipKey, Object]
}

// SchedulesService manages availability schedules.
type SchedulesService struct {
	List   Endpoint[NoParams, Object]
	Get    Endpoint[ByID, Object]
	Create Endpoint[Create[ScheduleCreate], Object]
	Edit   Endpoint[Edit[ScheduleEdit], Object]
	Remove Endpoint[ByID, Object]
}

// UsersService manages users.
type UsersService struct {
	Get  Endpoint[ByID, Object]
	Edit Endpoint[Edit[UserEdit], Object]
}

// WebhooksService manages webhook subscriptions.
type WebhooksService struct {
	List   Endpoint[NoParams, Object]
	Get    Endpoint[ByID, Object]
	Create Endpoint[Create[WebhookCreate], Object]
	Edit   Endpoint[Edit[WebhookEdit], Object]
	Remove Endpoint[ByID, Object]
}

func (c *Client) initServices() {
	c.Availability = &AvailabilityService{
		User: endpoint[UserAvailabilityParams, Object](c, OpUserAvailability),
		Team: endpoint[TeamAvailabilityParams, Object](c, OpTeamAvailability),
	}
	c.BookingReferences = &BookingReferencesService{
		List:   endpoint[NoParams, Object](c, OpListBookingReferences),
		Get:    endpoint[ByID, Object](c, OpGetBookingReference),
		Create: endpoint[Create[BookingReferenceCreate], Object](c, OpAddBookingReference),
		Edit:   endpoint[Edit[BookingReferenceEdit], Object](c, OpEditBookingReference),
		Remove: endpoint[ByID, Object](c, OpRemoveBookingReference),
	}
	c.Bookings = &BookingsService{
		List:   endpoint[ListBookingsParams, Object](c, OpListBookings),
		Get:    endpoint[ByID, Object](c, OpGetBooking),
		Create: endpoint[Create[BookingCreate], Object](c, OpAddBooking),
	}
	c.DestinationCalendars = &DestinationCalendarsService{
		Edit: endpoint[Edit[DestinationCalendarEdit], Object](c, OpEditDestinationCalendar),
	}
	c.Memberships = &MembershipsService{
		List:   endpoint[NoParams, Object](c, OpListMemberships),
		Create: endpoint[Create[Object], Object](c, OpAddMembership),
		Get:    endpoint[MembershipKey, Object](c, OpGetMembership),
		Edit:   endpoint[EditMembership, Object](c, OpEditMembership),
		Remove: endpoint[MembershipKey, Object](c, OpRemoveMembership),
	}
	c.Schedules = &SchedulesService{
		List:   endpoint[NoParams, Object](c, OpListSchedules),
		Get:    endpoint[ByID, Object](c, OpGetSchedule),
		Create: endpoint[Create[ScheduleCreate], Object](c, OpAddSchedule),
		Edit:   endpoint[Edit[ScheduleEdit], Object](c, OpEditSchedule),
		Remove: endpoint[ByID, Object](c, OpRemoveSchedule),
	}
	c.Users = &UsersService{
		Get:  endpoint[ByID, Object](c, OpGetUser),
		Edit: endpoint[Edit[UserEdit], Object](c, OpEditUser),
	}
	c.Webhooks = &WebhooksService{
		List:   endpoint[NoParams, Object](c, OpListWebhooks),
		Get:    endpoint[ByID, Object](c, OpGetWebhook),
		Create: endpoint[Create[WebhookCreate], Object](c, OpAddWebhook),
		Edit:   endpoint[Edit[WebhookEdit], Object](c, OpEditWebhook),
		Remove: endpoint[ByID, Object](c, OpRemoveWebhook),
	}
}

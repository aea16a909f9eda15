package calcom

// Params is implemented by the typed argument structs of each endpoint.
type Params interface {
	Args() *Args
}

// NoParams is the argument type of operations that take none.
type NoParams struct{}

func (NoParams) Args() *Args { return NewArgs() }

// ByID identifies a resource by its numeric ID.
type ByID struct {
	ID int64
}

func (p ByID) Args() *Args {
	return NewArgs().Set("id", Int(p.ID))
}

// UserAvailabilityParams are the arguments of GET /availability. Either
// UserID or Username identifies the user.
type UserAvailabilityParams struct {
	UserID      Opt[int64]
	Username    Opt[string]
	DateFrom    Opt[Date]
	DateTo      Opt[Date]
	EventTypeID Opt[int64]
}

func (p UserAvailabilityParams) Args() *Args {
	return NewArgs().
		Set("userId", intArg(p.UserID)).
		Set("username", stringArg(p.Username)).
		Set("dateFrom", dateArg(p.DateFrom)).
		Set("dateTo", dateArg(p.DateTo)).
		Set("eventTypeId", intArg(p.EventTypeID))
}

// TeamAvailabilityParams are the arguments of GET /teams/{teamId}/availability.
type TeamAvailabilityParams struct {
	TeamID      int64
	DateFrom    Opt[Date]
	DateTo      Opt[Date]
	EventTypeID Opt[int64]
}

func (p TeamAvailabilityParams) Args() *Args {
	return NewArgs().
		Set("teamId", Int(p.TeamID)).
		Set("dateFrom", dateArg(p.DateFrom)).
		Set("dateTo", dateArg(p.DateTo)).
		Set("eventTypeId", intArg(p.EventTypeID))
}

// ListBookingsParams filter GET /bookings. Each filter may hold several
// values; each value is sent as its own query pair.
type ListBookingsParams struct {
	UserIDs        []int64
	AttendeeEmails []string
	AttendeeNames  []string
}

func (p ListBookingsParams) Args() *Args {
	a := NewArgs().Set("userId", intsArg(p.UserIDs))
	if len(p.AttendeeEmails) > 0 {
		a.Set("attendeeEmail", Strings(p.AttendeeEmails...))
	}
	if len(p.AttendeeNames) > 0 {
		a.Set("attendeeName", Strings(p.AttendeeNames...))
	}
	return a
}

// MembershipKey identifies a membership by its user and team.
type MembershipKey struct {
	UserID int64
	TeamID int64
}

func (p MembershipKey) Args() *Args {
	return NewArgs().
		Set("userId", Int(p.UserID)).
		Set("teamId", Int(p.TeamID))
}

// Create carries the body of a create operation.
type Create[B any] struct {
	Body B
}

func (p Create[B]) Args() *Args {
	return NewArgs().SetBody(p.Body)
}

// Edit carries the ID and body of an edit operation.
type Edit[B any] struct {
	ID   int64
	Body B
}

func (p Edit[B]) Args() *Args {
	return NewArgs().Set("id", Int(p.ID)).SetBody(p.Body)
}

// EditMembership carries the key and body of PATCH /memberships/{userId}_{teamId}.
type EditMembership struct {
	MembershipKey
	Body Object
}

func (p EditMembership) Args() *Args {
	return p.MembershipKey.Args().SetBody(p.Body)
}

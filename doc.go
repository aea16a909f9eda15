// Package calcom is a typed client for the Cal.com public REST API. Models
// and parameter types are the source of truth: the client derives request
// serialization, response decoding and an OpenAPI 3.1 description of its own
// catalog from them.
//
// A Client is built from a Config and exposes one service per resource:
//
//	cfg := calcom.NewConfig()
//	cfg.APIKey = os.Getenv("CALCOM_API_KEY")
//	c, err := calcom.New(cfg)
//
//	slots, err := c.Availability.User.Do(ctx, calcom.UserAvailabilityParams{
//	    Username: calcom.Some("alice"),
//	    DateFrom: calcom.Some(calcom.NewDate(2024, time.January, 15)),
//	})
//
// Request bodies are models whose fields are Opt values. An Opt is unset,
// null or set, so an edit sends exactly the fields that were given:
//
//	body := calcom.UserEdit{
//	    TimeZone: calcom.Some("Europe/Paris"),
//	    Avatar:   calcom.Null[string](),
//	}
//	_, err = c.Users.Edit.Do(ctx, calcom.Edit[calcom.UserEdit]{ID: 7, Body: body})
//
// Every failure is one of four types: *ValidationError before anything is
// sent, *TransportError when no response arrives, *APIError for a non-2xx
// status and *DecodeError for a body that cannot be read. Use errors.As to
// tell them apart and ErrorStatus to get the HTTP status.
//
// Middleware uses the func(http.RoundTripper) http.RoundTripper signature
// and wraps the client's transport:
//
//	c, err := calcom.New(cfg, calcom.WithMiddleware(
//	    calcom.Recovery(),
//	    calcom.RequestID(),
//	    calcom.Logger(slog.Default()),
//	))
//
// The catalog itself is exported as Operations and can describe itself:
//
//	calcom.Operations.WriteSpecYAML(os.Stdout)
package calcom

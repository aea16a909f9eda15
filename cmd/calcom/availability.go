package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

// windowFlags are the flags shared by the availability commands.
type windowFlags struct {
	dateFrom    string
	dateTo      string
	eventTypeID int64
}

func (f *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dateFrom, "date-from", "", "start date in the configured dateFormat (default YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.dateTo, "date-to", "", "end date in the configured dateFormat (default YYYY-MM-DD)")
	cmd.Flags().Int64Var(&f.eventTypeID, "event-type-id", 0, "event type to check availability for")
}

// parse reads the window flags. Dates use format, the client's DateFormat.
func (f *windowFlags) parse(cmd *cobra.Command, format string) (from, to calcom.Opt[calcom.Date], eventType calcom.Opt[int64], err error) {
	if f.dateFrom != "" {
		d, perr := calcom.ParseDate(f.dateFrom, format)
		if perr != nil {
			return from, to, eventType, errors.Wrap(perr, "parse --date-from")
		}
		from = calcom.Some(d)
	}
	if f.dateTo != "" {
		d, perr := calcom.ParseDate(f.dateTo, format)
		if perr != nil {
			return from, to, eventType, errors.Wrap(perr, "parse --date-to")
		}
		to = calcom.Some(d)
	}
	if cmd.Flags().Changed("event-type-id") {
		eventType = calcom.Some(f.eventTypeID)
	}
	return from, to, eventType, nil
}

func newAvailabilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Query user or team availability",
	}
	cmd.AddCommand(newUserAvailabilityCmd(a), newTeamAvailabilityCmd(a))
	return cmd
}

func newUserAvailabilityCmd(a *app) *cobra.Command {
	var (
		window   windowFlags
		userID   int64
		username string
	)

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the availability of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			from, to, eventType, err := window.parse(cmd, c.Config().DateFormat)
			if err != nil {
				return err
			}
			p := calcom.UserAvailabilityParams{
				DateFrom:    from,
				DateTo:      to,
				EventTypeID: eventType,
			}
			if cmd.Flags().Changed("user-id") {
				p.UserID = calcom.Some(userID)
			}
			if username != "" {
				p.Username = calcom.Some(username)
			}

			out, err := c.Availability.User.Do(cmd.Context(), p)
			if err != nil {
				return errors.Wrap(err, "user availability")
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "ID of the user")
	cmd.Flags().StringVar(&username, "username", "", "username of the user")
	window.register(cmd)
	return cmd
}

func newTeamAvailabilityCmd(a *app) *cobra.Command {
	var window windowFlags

	cmd := &cobra.Command{
		Use:   "team TEAM_ID",
		Short: "Show the availability of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse team ID %q", args[0])
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			from, to, eventType, err := window.parse(cmd, c.Config().DateFormat)
			if err != nil {
				return err
			}

			out, err := c.Availability.Team.Do(cmd.Context(), calcom.TeamAvailabilityParams{
				TeamID:      teamID,
				DateFrom:    from,
				DateTo:      to,
				EventTypeID: eventType,
			})
			if err != nil {
				return errors.Wrap(err, "team availability")
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	window.register(cmd)
	return cmd
}

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

func newBookingReferencesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "booking-references",
		Aliases: []string{"refs"},
		Short:   "Manage the external references of bookings",
	}

	list := listCmd("list", "List booking references", func(cmd *cobra.Command) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.BookingReferences.List.Do(cmd.Context(), calcom.NoParams{})
		return out, errors.Wrap(err, "list booking references")
	})
	get := idCmd("get ID", "Show a booking reference", func(cmd *cobra.Command, id int64) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.BookingReferences.Get.Do(cmd.Context(), calcom.ByID{ID: id})
		return out, errors.Wrapf(err, "get booking reference %d", id)
	})
	remove := idCmd("delete ID", "Delete a booking reference", func(cmd *cobra.Command, id int64) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.BookingReferences.Remove.Do(cmd.Context(), calcom.ByID{ID: id})
		return out, errors.Wrapf(err, "delete booking reference %d", id)
	})

	cmd.AddCommand(list, get, newEditBookingReferenceCmd(a), remove)
	return cmd
}

func newEditBookingReferenceCmd(a *app) *cobra.Command {
	var (
		refType, meetingID, meetingPassword, externalCalendarID string
		deleted                                                 bool
		credentialID                                            int64
	)

	cmd := idCmd("edit ID", "Edit a booking reference", func(cmd *cobra.Command, id int64) (any, error) {
		body := calcom.BookingReferenceEdit{
			Type:               changed(cmd, "type", refType),
			MeetingID:          changed(cmd, "meeting-id", meetingID),
			MeetingPassword:    nullable(cmd, "meeting-password", meetingPassword),
			ExternalCalendarID: nullable(cmd, "external-calendar-id", externalCalendarID),
			Deleted:            changed(cmd, "deleted", deleted),
			CredentialID:       changed(cmd, "credential-id", credentialID),
		}

		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.BookingReferences.Edit.Do(cmd.Context(), calcom.Edit[calcom.BookingReferenceEdit]{ID: id, Body: body})
		return out, errors.Wrapf(err, "edit booking reference %d", id)
	})

	f := cmd.Flags()
	f.StringVar(&refType, "type", "", "integration type, e.g. daily_video")
	f.StringVar(&meetingID, "meeting-id", "", "meeting ID")
	f.StringVar(&meetingPassword, "meeting-password", "", "meeting password or null")
	f.StringVar(&externalCalendarID, "external-calendar-id", "", "external calendar ID or null")
	f.BoolVar(&deleted, "deleted", false, "mark the reference deleted")
	f.Int64Var(&credentialID, "credential-id", 0, "credential ID")
	return cmd
}

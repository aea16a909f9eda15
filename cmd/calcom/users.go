package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Read and edit users",
	}

	get := idCmd("get ID", "Show a user", func(cmd *cobra.Command, id int64) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Users.Get.Do(cmd.Context(), calcom.ByID{ID: id})
		return out, errors.Wrapf(err, "get user %d", id)
	})

	cmd.AddCommand(get, newEditUserCmd(a))
	return cmd
}

func newEditUserCmd(a *app) *cobra.Command {
	var (
		email, username, brandColor, darkBrandColor string
		weekStart, timeZone, theme, timeFormat      string
		locale, avatar                              string
		hideBranding                                bool
	)

	cmd := idCmd("edit ID", "Edit a user", func(cmd *cobra.Command, id int64) (any, error) {
		body := calcom.UserEdit{
			Email:          changed(cmd, "email", email),
			Username:       changed(cmd, "username", username),
			BrandColor:     changed(cmd, "brand-color", brandColor),
			DarkBrandColor: changed(cmd, "dark-brand-color", darkBrandColor),
			WeekStart:      changed(cmd, "week-start", calcom.WeekStart(weekStart)),
			TimeZone:       changed(cmd, "time-zone", timeZone),
			HideBranding:   changed(cmd, "hide-branding", hideBranding),
			Theme:          nullable(cmd, "theme", calcom.Theme(theme)),
			TimeFormat:     changed(cmd, "time-format", calcom.TimeFormat(timeFormat)),
			Locale:         changed(cmd, "locale", calcom.Locale(locale)),
			Avatar:         nullable(cmd, "avatar", avatar),
		}

		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Users.Edit.Do(cmd.Context(), calcom.Edit[calcom.UserEdit]{ID: id, Body: body})
		return out, errors.Wrapf(err, "edit user %d", id)
	})

	f := cmd.Flags()
	f.StringVar(&email, "email", "", "email address")
	f.StringVar(&username, "username", "", "username")
	f.StringVar(&brandColor, "brand-color", "", "brand color")
	f.StringVar(&darkBrandColor, "dark-brand-color", "", "brand color for dark mode")
	f.StringVar(&weekStart, "week-start", "", "first day of the week, e.g. MONDAY")
	f.StringVar(&timeZone, "time-zone", "", "IANA time zone")
	f.BoolVar(&hideBranding, "hide-branding", false, "hide branding on the booking page")
	f.StringVar(&theme, "theme", "", "DARK, LIGHT or null")
	f.StringVar(&timeFormat, "time-format", "", "TWELVE or TWENTY_FOUR")
	f.StringVar(&locale, "locale", "", "interface language, e.g. EN")
	f.StringVar(&avatar, "avatar", "", "base64 avatar or null")
	return cmd
}

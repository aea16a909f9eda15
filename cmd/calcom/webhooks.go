package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

func newWebhooksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhook subscriptions",
	}

	list := listCmd("list", "List webhooks", func(cmd *cobra.Command) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Webhooks.List.Do(cmd.Context(), calcom.NoParams{})
		return out, errors.Wrap(err, "list webhooks")
	})
	get := idCmd("get ID", "Show a webhook", func(cmd *cobra.Command, id int64) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Webhooks.Get.Do(cmd.Context(), calcom.ByID{ID: id})
		return out, errors.Wrapf(err, "get webhook %d", id)
	})
	remove := idCmd("delete ID", "Delete a webhook", func(cmd *cobra.Command, id int64) (any, error) {
		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Webhooks.Remove.Do(cmd.Context(), calcom.ByID{ID: id})
		return out, errors.Wrapf(err, "delete webhook %d", id)
	})

	cmd.AddCommand(list, get, newCreateWebhookCmd(a), newEditWebhookCmd(a), remove)
	return cmd
}

func newCreateWebhookCmd(a *app) *cobra.Command {
	var (
		subscriberURL, trigger, payloadTemplate, secret string
		active                                          bool
	)

	cmd := listCmd("create", "Subscribe to events", func(cmd *cobra.Command) (any, error) {
		body := calcom.WebhookCreate{
			SubscriberURL:   calcom.Some(subscriberURL),
			EventTriggers:   calcom.Some(calcom.WebhookTrigger(trigger)),
			Active:          calcom.Some(active),
			PayloadTemplate: changed(cmd, "payload-template", payloadTemplate),
			Secret:          changed(cmd, "secret", secret),
		}

		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Webhooks.Create.Do(cmd.Context(), calcom.Create[calcom.WebhookCreate]{Body: body})
		return out, errors.Wrap(err, "create webhook")
	})

	f := cmd.Flags()
	f.StringVar(&subscriberURL, "subscriber-url", "", "URL that receives the events")
	f.StringVar(&trigger, "trigger", string(calcom.TriggerBookingCreated), "event that fires the webhook")
	f.BoolVar(&active, "active", true, "whether the webhook fires")
	f.StringVar(&payloadTemplate, "payload-template", "", "payload template")
	f.StringVar(&secret, "secret", "", "secret used to sign payloads")
	_ = cmd.MarkFlagRequired("subscriber-url")
	return cmd
}

func newEditWebhookCmd(a *app) *cobra.Command {
	var (
		subscriberURL, trigger, payloadTemplate, secret string
		active                                          bool
	)

	cmd := idCmd("edit ID", "Edit a webhook", func(cmd *cobra.Command, id int64) (any, error) {
		body := calcom.WebhookEdit{
			SubscriberURL:   changed(cmd, "subscriber-url", subscriberURL),
			EventTriggers:   changed(cmd, "trigger", calcom.WebhookTrigger(trigger)),
			Active:          changed(cmd, "active", active),
			PayloadTemplate: nullable(cmd, "payload-template", payloadTemplate),
			Secret:          nullable(cmd, "secret", secret),
		}

		c, err := a.client()
		if err != nil {
			return nil, err
		}
		out, err := c.Webhooks.Edit.Do(cmd.Context(), calcom.Edit[calcom.WebhookEdit]{ID: id, Body: body})
		return out, errors.Wrapf(err, "edit webhook %d", id)
	})

	f := cmd.Flags()
	f.StringVar(&subscriberURL, "subscriber-url", "", "URL that receives the events")
	f.StringVar(&trigger, "trigger", "", "event that fires the webhook")
	f.BoolVar(&active, "active", false, "whether the webhook fires")
	f.StringVar(&payloadTemplate, "payload-template", "", "payload template or null")
	f.StringVar(&secret, "secret", "", "signing secret or null")
	return cmd
}

// Command calcom is a command line front end for the Cal.com API client.
//
// Query availability:
//
//	calcom availability user --username alice --date-from 2024-01-15 --date-to 2024-01-22
//	calcom availability team 42 --date-from 2024-01-15
//
// Edit resources:
//
//	calcom users edit 7 --time-zone Europe/Paris --week-start MONDAY
//	calcom webhooks edit 3 --trigger MEETING_ENDED --active=false
//	calcom booking-references edit 9 --meeting-id abc --deleted
//
// Export or browse the OpenAPI description of the client catalog:
//
//	calcom spec --yaml -o openapi.yaml
//	calcom docs --addr :8080
//
// Credentials and host come from flags, CALCOM_* environment variables or a
// YAML configuration file (--config).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"os"
)

// Plan lookup keys accepted by the billing endpoint.
const (
	PlanPro     = "pro_monthly"
	PlanProPlus = "pro_plus_monthly"
)

// Upgrade requests a checkout link for a paid plan and prints it for the user
// to open in a browser.
func (a *App) Upgrade(ctx context.Context) error {
	plan, err := getSimpleText(a.reader, "Choose a plan: pro / pro_plus", os.Stdout)
	if err != nil {
		return err
	}

	var lookupKey string
	switch plan {
	case "pro", PlanPro:
		lookupKey = PlanPro
	case "pro_plus", PlanProPlus:
		lookupKey = PlanProPlus
	default:
		printlnFn("Unknown plan:", plan)
		return nil
	}

	url, err := a.api.CreateCheckoutSession(ctx, lookupKey)
	if err != nil {
		printlnFn("Error:", err.Error())
		reportAuthLoss(err)
		return err
	}

	printlnFn("Open this link to complete the upgrade:")
	printlnFn(url)
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// ListEnquiries prints all contact-form enquiries with their status.
func (a *App) ListEnquiries(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	items, err := a.content.Enquiries(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No enquiries.")
		return nil
	}
	for _, e := range items {
		printlnFn(fmt.Sprintf("[%s] (%s) %s <%s>: %s", e.ID, e.Status, e.Name, e.Email, e.Message))
	}
	return nil
}

// SetEnquiryStatus updates the status of one enquiry.
func (a *App) SetEnquiryStatus(ctx context.Context, args []string) error {
	if !a.ensureAuthorized() {
		return nil
	}
	if len(args) < 2 {
		printlnFn("Usage: enqstatus <id> <new|read|resolved>")
		return nil
	}
	if err := a.content.UpdateEnquiryStatus(ctx, args[0], args[1]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Enquiry updated.")
	return nil
}

// DeleteEnquiry removes the enquiry with the given id.
func (a *App) DeleteEnquiry(ctx context.Context, args []string) error {
	if !a.ensureAuthorized() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: rmenq <id>")
		return nil
	}
	if err := a.content.DeleteEnquiry(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Enquiry deleted.")
	return nil
}

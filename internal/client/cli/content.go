package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/paharpur/siteadmin/internal/client/models"
)

// ShowHeader prints the current site header section.
func (a *App) ShowHeader(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	h, err := a.content.Header(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Logo:   ", h.LogoURL)
	printlnFn("Phone:  ", h.Contact.Phone)
	printlnFn("Email:  ", h.Contact.Email)
	for _, l := range h.NavigationLinks {
		printlnFn(fmt.Sprintf("Nav:     %s -> %s", l.Name, l.URL))
	}
	return nil
}

// EditHeader prompts for the header fields and saves them. Empty input keeps
// the current value; navigation links are replaced only when at least one
// new link is entered.
func (a *App) EditHeader(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	h, err := a.content.Header(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if v, err := getSimpleText(a.reader, "Logo URL (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		h.LogoURL = v
	}
	if v, err := getSimpleText(a.reader, "Contact phone (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		h.Contact.Phone = v
	}
	if v, err := getSimpleText(a.reader, "Contact email (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		h.Contact.Email = v
	}

	links, err := a.promptLinks("navigation link")
	if err != nil {
		return err
	}
	if len(links) > 0 {
		h.NavigationLinks = links
	}

	if err := a.content.UpdateHeader(ctx, h); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Header updated.")
	return nil
}

// ShowBanner prints the current landing banner.
func (a *App) ShowBanner(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	b, err := a.content.Banner(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Title:   ", b.Title)
	printlnFn("Subtitle:", b.Subtitle)
	printlnFn("Image:   ", b.ImageURL)
	return nil
}

// AddBanner prompts for a new landing banner and saves it.
func (a *App) AddBanner(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}

	b := &models.Banner{}
	var err error
	if b.Title, err = getSimpleText(a.reader, "Banner title", os.Stdout); err != nil {
		return err
	}
	if b.Subtitle, err = getSimpleText(a.reader, "Banner subtitle", os.Stdout); err != nil {
		return err
	}
	if b.ImageURL, err = getSimpleText(a.reader, "Banner image URL", os.Stdout); err != nil {
		return err
	}

	if err := a.content.CreateBanner(ctx, b); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Banner saved.")
	return nil
}

// ShowHero prints the hero section copy.
func (a *App) ShowHero(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	h, err := a.content.HeroText(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Heading:   ", h.Heading)
	printlnFn("Subheading:", h.Subheading)
	printlnFn("Button:    ", h.ButtonText)
	return nil
}

// EditHero prompts for the hero section copy and saves it.
func (a *App) EditHero(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}

	h := &models.HeroText{}
	var err error
	if h.Heading, err = getSimpleText(a.reader, "Hero heading", os.Stdout); err != nil {
		return err
	}
	if h.Subheading, err = getSimpleText(a.reader, "Hero subheading", os.Stdout); err != nil {
		return err
	}
	if h.ButtonText, err = getSimpleText(a.reader, "Hero button text", os.Stdout); err != nil {
		return err
	}

	if err := a.content.UpdateHeroText(ctx, h); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Hero text updated.")
	return nil
}

// ShowFooter prints the footer section.
func (a *App) ShowFooter(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	f, err := a.content.Footer(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("About:  ", f.AboutText)
	printlnFn("Email:  ", f.Email)
	printlnFn("Phone:  ", f.Phone)
	printlnFn("Address:", f.Address)
	for _, l := range f.SocialLinks {
		printlnFn(fmt.Sprintf("Social:  %s -> %s", l.Name, l.URL))
	}
	return nil
}

// EditFooter prompts for the footer fields and saves them. The about text is
// multi-line; other empty inputs keep the current value.
func (a *App) EditFooter(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	f, err := a.content.Footer(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if v, err := GetMultiline(a.reader, "About text (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		f.AboutText = v
	}
	if v, err := getSimpleText(a.reader, "Footer email (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		f.Email = v
	}
	if v, err := getSimpleText(a.reader, "Footer phone (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		f.Phone = v
	}
	if v, err := getSimpleText(a.reader, "Footer address (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		f.Address = v
	}

	links, err := a.promptLinks("social link")
	if err != nil {
		return err
	}
	if len(links) > 0 {
		f.SocialLinks = links
	}

	if err := a.content.UpdateFooter(ctx, f); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Footer updated.")
	return nil
}

// ListInitiatives prints all initiative cards.
func (a *App) ListInitiatives(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}
	items, err := a.content.Initiatives(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No initiatives.")
		return nil
	}
	for _, in := range items {
		printlnFn(fmt.Sprintf("[%s] %s: %s", in.ID, in.Title, in.Description))
	}
	return nil
}

// AddInitiative prompts for a new initiative card and saves it.
func (a *App) AddInitiative(ctx context.Context) error {
	if !a.ensureAuthorized() {
		return nil
	}

	in := &models.Initiative{}
	var err error
	if in.Title, err = getSimpleText(a.reader, "Initiative title", os.Stdout); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Initiative description", os.Stdout); err != nil {
		return err
	}
	if in.ImageURL, err = getSimpleText(a.reader, "Initiative image URL", os.Stdout); err != nil {
		return err
	}

	if err := a.content.CreateInitiative(ctx, in); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Initiative added.")
	return nil
}

// EditInitiative loads the initiative with the given id and prompts for the
// fields to change. Empty input keeps the current value.
func (a *App) EditInitiative(ctx context.Context, args []string) error {
	if !a.ensureAuthorized() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: setinit <id>")
		return nil
	}

	items, err := a.content.Initiatives(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	var in *models.Initiative
	for i := range items {
		if items[i].ID == args[0] {
			in = &items[i]
			break
		}
	}
	if in == nil {
		printlnFn("Initiative not found:", args[0])
		return nil
	}

	if v, err := getSimpleText(a.reader, "Title (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.Title = v
	}
	if v, err := GetMultiline(a.reader, "Description (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.Description = v
	}
	if v, err := getSimpleText(a.reader, "Image URL (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.ImageURL = v
	}

	if err := a.content.UpdateInitiative(ctx, in.ID, in); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Initiative updated.")
	return nil
}

// DeleteInitiative removes the initiative with the given id.
func (a *App) DeleteInitiative(ctx context.Context, args []string) error {
	if !a.ensureAuthorized() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: rminit <id>")
		return nil
	}
	if err := a.content.DeleteInitiative(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Initiative deleted.")
	return nil
}

// promptLinks reads name/url pairs until the name is left empty.
func (a *App) promptLinks(kind string) ([]models.NavigationLink, error) {
	var links []models.NavigationLink
	for {
		name, err := getSimpleText(a.reader, "New "+kind+" name (empty to finish)", os.Stdout)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return links, nil
		}
		url, err := getSimpleText(a.reader, "New "+kind+" URL", os.Stdout)
		if err != nil {
			return nil, err
		}
		links = append(links, models.NavigationLink{Name: name, URL: url})
	}
}

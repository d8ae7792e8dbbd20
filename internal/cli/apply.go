package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/tourmate-app/tourmate-cli/internal/api"
	"github.com/tourmate-app/tourmate-cli/internal/wizard"
)

const termsText = `TourMate guide terms (summary):
 - you confirm the submitted documents are yours and accurate;
 - approved guides appear in search and agree to the commission schedule;
 - applications are reviewed manually and may be rejected without reason.`

// Apply runs the five-step guide application. The wizard owns the draft and
// the step transitions; this flow only renders prompts and relays commands,
// the way the modal shell does in the web client.
func (a *App) Apply(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in before applying as a guide.")
		return nil
	}

	w := wizard.New(a.api)
	printlnFn("Guide application: 5 steps. After each step type next, back or cancel.")

	for w.State == wizard.StateEditing {
		printlnFn(stepTitle(w.Step))
		if err := a.editStep(w); err != nil {
			return err
		}

		prompt := "next, back or cancel?"
		if w.Step == 5 {
			prompt = "submit, back or cancel?"
		}
		cmd, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}

		switch cmd {
		case "next":
			if !w.Advance() {
				a.showErrors(w)
			}

		case "back":
			w.Retreat()

		case "submit":
			if w.Step != 5 {
				printlnFn("Finish the remaining steps first.")
				continue
			}
			err := w.Submit(ctx)
			switch {
			case errors.Is(err, wizard.ErrValidation):
				a.showErrors(w)
			case err != nil:
				printlnFn(api.Message(err))
				printlnFn("Your answers were kept; type submit to try again.")
			default:
				printlnFn("Application submitted. We'll be in touch!")
			}

		case "cancel":
			w.Close()
			printlnFn("Application discarded.")

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
	return nil
}

func stepTitle(step int) string {
	switch step {
	case 1:
		return "-- Step 1 of 5: personal details --"
	case 2:
		return "-- Step 2 of 5: professional profile --"
	case 3:
		return "-- Step 3 of 5: pricing --"
	case 4:
		return "-- Step 4 of 5: documents --"
	default:
		return "-- Step 5 of 5: review and terms --"
	}
}

func (a *App) showErrors(w *wizard.Wizard) {
	printlnFn("Please fix the following:")
	for field, msg := range w.Errors {
		printlnFn("  " + field + ": " + msg)
	}
}

func (a *App) editStep(w *wizard.Wizard) error {
	d := w.Draft
	switch w.Step {
	case 1:
		return a.editIdentity(d)
	case 2:
		return a.editProfile(d)
	case 3:
		return a.editPricing(d)
	case 4:
		return a.editDocuments(d)
	default:
		return a.editReview(d)
	}
}

func (a *App) editIdentity(d *wizard.RegistrationDraft) error {
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &d.FirstName},
		{"Last name", &d.LastName},
		{"Email", &d.Email},
		{"Phone", &d.Phone},
		{"National ID number", &d.NationalID},
		{"Birth date (YYYY-MM-DD)", &d.BirthDate},
		{"Address", &d.Address},
	}
	for _, f := range fields {
		got, err := GetTextDefault(a.reader, f.prompt, *f.dst, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = got
	}
	return nil
}

func (a *App) editProfile(d *wizard.RegistrationDraft) error {
	exp, err := GetMultiline(a.reader, "Describe your guiding experience", os.Stdout)
	if err != nil {
		return err
	}
	if exp != "" {
		d.Experience = exp
	}

	if d.Languages, err = a.toggleSelect(d.Languages, "Languages you guide in"); err != nil {
		return err
	}
	if d.Specializations, err = a.toggleSelect(d.Specializations, "Specializations (hiking, culture, wildlife, food...)"); err != nil {
		return err
	}
	if d.Regions, err = a.toggleSelect(d.Regions, "Preferred regions"); err != nil {
		return err
	}
	if d.TourTypes, err = a.toggleSelect(d.TourTypes, "Tour types (private, group, day-trip...)"); err != nil {
		return err
	}

	days, err := getSimpleText(a.reader, "Available days (mon,tue,wed,thu,fri,sat,sun; empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if days != "" {
		d.Availability = parseAvailability(days)
	}
	return nil
}

func (a *App) editPricing(d *wizard.RegistrationDraft) error {
	var err error
	if d.HourlyRate, err = GetTextDefault(a.reader, "Hourly rate", d.HourlyRate, os.Stdout); err != nil {
		return err
	}
	if d.FullDayRate, err = GetTextDefault(a.reader, "Full-day rate", d.FullDayRate, os.Stdout); err != nil {
		return err
	}
	if d.MultiDayRate, err = GetTextDefault(a.reader, "Multi-day rate (optional)", d.MultiDayRate, os.Stdout); err != nil {
		return err
	}
	return nil
}

func (a *App) editDocuments(d *wizard.RegistrationDraft) error {
	if f, err := GetFile(a.reader, "Profile photo", os.Stdout); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		printlnFn("Could not read file:", err.Error())
	} else if f != nil {
		d.ProfilePhoto = f
	}

	if f, err := GetFile(a.reader, "Identity document photo", os.Stdout); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		printlnFn("Could not read file:", err.Error())
	} else if f != nil {
		d.IDPhoto = f
	}

	// An unreadable path is reprompted; a closed input stream must end the
	// flow, not spin on the prompt.
	for {
		f, err := GetFile(a.reader, "Certification (repeat as needed)", os.Stdout)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			printlnFn("Could not read file:", err.Error())
			continue
		}
		if f == nil {
			break
		}
		d.Certifications = append(d.Certifications, *f)
	}
	return nil
}

func (a *App) editReview(d *wizard.RegistrationDraft) error {
	links, err := getSimpleText(a.reader, "Social links (platform=url, comma-separated; empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	for _, pair := range strings.Split(links, ",") {
		if name, url, ok := strings.Cut(strings.TrimSpace(pair), "="); ok {
			d.SocialMedia[name] = url
		}
	}

	for i := range d.References {
		printlnFn("Reference contact", i+1)
		if d.References[i].Name, err = GetTextDefault(a.reader, "  Name", d.References[i].Name, os.Stdout); err != nil {
			return err
		}
		if d.References[i].Phone, err = GetTextDefault(a.reader, "  Phone", d.References[i].Phone, os.Stdout); err != nil {
			return err
		}
		if d.References[i].Email, err = GetTextDefault(a.reader, "  Email", d.References[i].Email, os.Stdout); err != nil {
			return err
		}
	}

	view, err := GetYesNo(a.reader, "View the terms and conditions?", os.Stdout)
	if err != nil {
		return err
	}
	if view {
		printlnFn(termsText)
	}

	d.TermsAccepted, err = GetYesNo(a.reader, "Do you accept the terms?", os.Stdout)
	return err
}

// toggleSelect reads comma-separated values and toggles each one's
// membership: entering a value that is already selected removes it.
func (a *App) toggleSelect(current []string, prompt string) ([]string, error) {
	line, err := getSimpleText(a.reader, prompt+" (comma-separated; re-entering a value removes it)", os.Stdout)
	if err != nil {
		return nil, err
	}
	for _, tok := range strings.Split(line, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			current = wizard.ToggleValue(current, tok)
		}
	}
	return current, nil
}

func parseAvailability(line string) wizard.Availability {
	var av wizard.Availability
	for _, tok := range strings.Split(line, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "mon", "monday":
			av.Monday = true
		case "tue", "tuesday":
			av.Tuesday = true
		case "wed", "wednesday":
			av.Wednesday = true
		case "thu", "thursday":
			av.Thursday = true
		case "fri", "friday":
			av.Friday = true
		case "sat", "saturday":
			av.Saturday = true
		case "sun", "sunday":
			av.Sunday = true
		}
	}
	return av
}

package wizard

import (
	"strconv"
	"strings"
	"time"
)

// timeNow is a seam so age checks can be pinned in tests.
var timeNow = time.Now

const birthDateLayout = "2006-01-02"

const minGuideAge = 18

// Validate is a pure function from (step, draft) to a field→message map.
// An empty map means the step passes. It runs on every step transition and
// again on final submit; it never mutates the draft.
func Validate(step int, d *RegistrationDraft) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		requireText(errs, "firstName", d.FirstName, "First name is required")
		requireText(errs, "lastName", d.LastName, "Last name is required")
		requireText(errs, "email", d.Email, "Email is required")
		requireText(errs, "phone", d.Phone, "Phone number is required")
		requireText(errs, "nationalId", d.NationalID, "National ID number is required")
		requireText(errs, "address", d.Address, "Address is required")
		validateBirthDate(errs, d.BirthDate)

	case 2:
		requireText(errs, "experience", d.Experience, "Tell us about your experience")
		if len(d.Languages) == 0 {
			errs["languages"] = "Select at least one language"
		}
		if len(d.Specializations) == 0 {
			errs["specializations"] = "Select at least one specialization"
		}
		if len(d.Regions) == 0 {
			errs["preferredRegions"] = "Select at least one preferred region"
		}

	case 3:
		requireRate(errs, "hourlyRate", d.HourlyRate, "Hourly rate is required")
		requireRate(errs, "fullDayRate", d.FullDayRate, "Full-day rate is required")

	case 4:
		if !d.ProfilePhoto.IsSet() {
			errs["profilePhoto"] = "Profile photo is required"
		}
		if !d.IDPhoto.IsSet() {
			errs["idPhoto"] = "A photo of your identity document is required"
		}

	case 5:
		if !d.TermsAccepted {
			errs["termsAccepted"] = "You must accept the terms and conditions"
		}
	}

	return errs
}

func requireText(errs map[string]string, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}

// requireRate checks presence and numeric form only. No upper bound and no
// currency validation; the backend owns those rules.
func requireRate(errs map[string]string, field, value, requiredMsg string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs[field] = requiredMsg
		return
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		errs[field] = "Enter a numeric amount"
	}
}

func validateBirthDate(errs map[string]string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs["birthDate"] = "Birth date is required"
		return
	}

	birth, err := time.Parse(birthDateLayout, value)
	if err != nil {
		errs["birthDate"] = "Enter your birth date as YYYY-MM-DD"
		return
	}

	now := timeNow()
	if birth.After(now) {
		errs["birthDate"] = "Birth date cannot be in the future"
		return
	}
	if ageAt(birth, now) < minGuideAge {
		errs["birthDate"] = "You must be at least 18 years old"
	}
}

// ageAt computes age by calendar subtraction: year difference adjusted by
// whether the birthday has occurred yet this year. Deliberately not a
// 365-day approximation.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

package utils

import (
	"regexp"
	"strings"
)

var (
	addressLineRegex  = regexp.MustCompile(`^[a-zA-Z0-9\s,.'#\-/]+$`)
	addressLine2Regex = regexp.MustCompile(`^[a-zA-Z0-9\s,.'#\-/]*$`)
	cityRegex         = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	nameRegex         = regexp.MustCompile(`^[a-zA-Z\s'\-]+$`)
	zipRegex          = regexp.MustCompile(`^[a-zA-Z0-9\s\-]{3,10}$`)
)

// ValidateAddressFields validates address fields according to business rules
func ValidateAddressFields(address1, address2, city, state, zip, country, firstName, lastName string) []FieldValidationError {
	errs := []FieldValidationError{}

	// address1: required, length, content
	address1 = strings.TrimSpace(address1)
	if address1 == "" {
		errs = append(errs, FieldValidationError{"address1", "Address Line 1 is required"})
	} else {
		if len(address1) > 150 {
			errs = append(errs, FieldValidationError{"address1", "Address Line 1 must not exceed 150 characters"})
		}
		if !addressLineRegex.MatchString(address1) {
			errs = append(errs, FieldValidationError{"address1", "Address Line 1 contains invalid characters"})
		}
	}

	// address2: optional, length, content
	address2 = strings.TrimSpace(address2)
	if len(address2) > 0 {
		if len(address2) > 100 {
			errs = append(errs, FieldValidationError{"address2", "Address Line 2 must not exceed 100 characters"})
		}
		if !addressLine2Regex.MatchString(address2) {
			errs = append(errs, FieldValidationError{"address2", "Address Line 2 contains invalid characters"})
		}
	}

	// city: required, length, content
	city = strings.TrimSpace(city)
	if city == "" {
		errs = append(errs, FieldValidationError{"city", "City is required"})
	} else {
		if len(city) > 100 {
			errs = append(errs, FieldValidationError{"city", "City must not exceed 100 characters"})
		}
		if !cityRegex.MatchString(city) {
			errs = append(errs, FieldValidationError{"city", "City must only contain letters and spaces"})
		}
	}

	// state: required, length
	state = strings.TrimSpace(state)
	if state == "" {
		errs = append(errs, FieldValidationError{"state", "State is required"})
	} else if len(state) > 100 {
		errs = append(errs, FieldValidationError{"state", "State must not exceed 100 characters"})
	}

	// zip: required, format
	zip = strings.TrimSpace(zip)
	if zip == "" {
		errs = append(errs, FieldValidationError{"zip", "Zip code is required"})
	} else if !zipRegex.MatchString(zip) {
		errs = append(errs, FieldValidationError{"zip", "Zip code format is invalid"})
	}

	// country: required, length
	country = strings.TrimSpace(country)
	if country == "" {
		errs = append(errs, FieldValidationError{"country", "Country is required"})
	} else if len(country) > 100 {
		errs = append(errs, FieldValidationError{"country", "Country must not exceed 100 characters"})
	}

	// first_name / last_name: required, content
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		errs = append(errs, FieldValidationError{"first_name", "First name is required"})
	} else if !nameRegex.MatchString(firstName) {
		errs = append(errs, FieldValidationError{"first_name", "First name contains invalid characters"})
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		errs = append(errs, FieldValidationError{"last_name", "Last name is required"})
	} else if !nameRegex.MatchString(lastName) {
		errs = append(errs, FieldValidationError{"last_name", "Last name contains invalid characters"})
	}

	return errs
}

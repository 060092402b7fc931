package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/mwhitfield/shopcore/models"
)

var (
	cardNoRegex = regexp.MustCompile(`^[0-9]{13,19}$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ValidatePaymentInputs validates a card record before it is written. Only
// field shape is checked here; ownership of the billing address is not
// verified against the card's user.
func ValidatePaymentInputs(card *models.Card) []FieldValidationError {
	errs := []FieldValidationError{}

	if strings.TrimSpace(card.CardType) == "" {
		errs = append(errs, FieldValidationError{"card_type", "Card type is required"})
	}

	if strings.TrimSpace(card.Provider) == "" {
		errs = append(errs, FieldValidationError{"provider", "Provider is required"})
	}

	cardNo := strings.TrimSpace(card.CardNo)
	if cardNo == "" {
		errs = append(errs, FieldValidationError{"card_no", "Card number is required"})
	} else if !cardNoRegex.MatchString(cardNo) {
		errs = append(errs, FieldValidationError{"card_no", "Card number must be 13 to 19 digits"})
	}

	cvv := strings.TrimSpace(card.CVV)
	if cvv == "" {
		errs = append(errs, FieldValidationError{"cvv", "CVV is required"})
	} else if !cvvRegex.MatchString(cvv) {
		errs = append(errs, FieldValidationError{"cvv", "CVV must be 3 or 4 digits"})
	}

	if card.ExpMonth < 1 || card.ExpMonth > 12 {
		errs = append(errs, FieldValidationError{"exp_month", "Expiration month must be between 1 and 12"})
	}

	currentYear := time.Now().Year()
	if card.ExpYear < currentYear || card.ExpYear > currentYear+20 {
		errs = append(errs, FieldValidationError{"exp_year", "Expiration year is out of range"})
	}

	if card.UserID == 0 {
		errs = append(errs, FieldValidationError{"user_id", "User id is required"})
	}

	return errs
}

// AttachIsPrimaryPayment sets the non-persisted IsPrimaryPayment flag on a
// card by comparing its id against the user's primary payment pointer.
func AttachIsPrimaryPayment(card *models.Card, primaryPaymentID *uint) {
	card.IsPrimaryPayment = primaryPaymentID != nil && *primaryPaymentID == card.ID
}

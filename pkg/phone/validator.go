package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number carries no country prefix
const DefaultRegion = "US"

// NormalizeE164 parses a phone number and returns it in E.164 format
// (+18138191450). Numbers that cannot be parsed or are not valid for their
// region return an error; callers decide whether to keep the raw input.
func NormalizeE164(phone, region string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number for region %s", region)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether the number parses as a valid number for the region
func IsValid(phone, region string) bool {
	_, err := NormalizeE164(phone, region)
	return err == nil
}

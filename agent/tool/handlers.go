package tool

import (
	"fmt"

	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

const (
	RefundDisabledMessage  = "Refund tool disabled: premium membership required."
	RestartDisabledMessage = "Restart tool disabled: this request is not a technical issue."
	RestartSentMessage     = "Service restart command sent. Please wait ~2 minutes and try again."
	ServiceStatusMessage   = "All systems operational, no outages detected in your region."
	GeneralFAQMessage      = "Here's some info: You can update profile in Settings > Account. " +
		"Type 'invoice', 'refund', or describe a technical error for specialized help."
)

func tierLabel(s *statex.SessionContext) string {
	if s != nil && s.IsPremiumUser {
		return "Premium"
	}
	return "Free"
}

func displayName(s *statex.SessionContext) string {
	if s == nil || s.Name == "" {
		return statex.DefaultName
	}
	return s.Name
}

func GetInvoice(s *statex.SessionContext) string {
	return fmt.Sprintf("Invoice for %s: Plan=%s, Last payment: 2025-08-01, Amount: $19.00", displayName(s), tierLabel(s))
}

// Refund is gated on premium membership. A denied refund is a normal reply.
func Refund(s *statex.SessionContext) string {
	if !RefundAllowed(s) {
		return RefundDisabledMessage
	}
	return fmt.Sprintf("Refund initiated for %s. You will receive confirmation via email.", displayName(s))
}

// RestartService only runs while the current turn is classified technical.
func RestartService(s *statex.SessionContext) string {
	if !RestartAllowed(s) {
		return RestartDisabledMessage
	}
	return RestartSentMessage
}

func CheckServiceStatus() string {
	return ServiceStatusMessage
}

func GeneralFAQ() string {
	return GeneralFAQMessage
}

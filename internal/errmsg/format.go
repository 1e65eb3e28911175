// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Dashboard
	OpStatsLoad Op = "load dashboard stats"

	// Lead operations
	OpLeadsLoad  Op = "load leads"
	OpLeadCreate Op = "add lead"

	// Property operations
	OpPropertiesLoad Op = "load properties"
	OpPropertyCreate Op = "add property"

	// Conversation operations
	OpConversationsLoad Op = "load conversations"
	OpMessagesLoad      Op = "load messages"
	OpMessageSend       Op = "send message"

	// Review operations
	OpReviewsLoad   Op = "load reviews"
	OpReviewApprove Op = "approve review"
	OpReviewEdit    Op = "edit review"
	OpReviewReject  Op = "reject review"

	// Demo walkthrough
	OpDemoLoad Op = "load demo script"

	// Local state
	OpStateOpen  Op = "open local state"
	OpTokenSave  Op = "save token"
	OpSearchSave Op = "save search"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

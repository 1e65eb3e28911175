//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLeadsLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLeadsLoad,
			err:      errors.New("connection refused"),
			expected: "Failed to load leads: connection refused",
		},
		{
			name:     "stats operation",
			op:       OpStatsLoad,
			err:      errors.New("timeout"),
			expected: "Failed to load dashboard stats: timeout",
		},
		{
			name:     "review operation",
			op:       OpReviewApprove,
			err:      errors.New("already reviewed"),
			expected: "Failed to approve review: already reviewed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDemoLoad,
			context:  "tour.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpDemoLoad,
			context:  "tour.toml",
			err:      errors.New("step 2: title is required"),
			expected: "Failed to load demo script 'tour.toml': step 2: title is required",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpReviewReject,
			context:  "",
			err:      errors.New("not found"),
			expected: "Failed to reject review: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpStatsLoad,
		OpLeadsLoad, OpLeadCreate,
		OpPropertiesLoad, OpPropertyCreate,
		OpConversationsLoad, OpMessagesLoad, OpMessageSend,
		OpReviewsLoad, OpReviewApprove, OpReviewEdit, OpReviewReject,
		OpDemoLoad,
		OpStateOpen, OpTokenSave, OpSearchSave,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}

// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	OpScrollToSection Op = "scroll to section"
	OpReloadConfig    Op = "reload config"
	OpLoadConfig      Op = "load config"
	OpLoadDirectory   Op = "load directory"
	OpFilterDirectory Op = "filter directory"
	OpStartLogging    Op = "start logging"
	OpWatchConfig     Op = "watch config"
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

// Wrap returns err annotated with op, still matchable with errors.Is.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// WrapWith is Wrap with additional context.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	if context == "" {
		return Wrap(op, err)
	}
	return fmt.Errorf("failed to %s '%s': %w", op, context, err)
}

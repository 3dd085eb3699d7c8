package service

import "context"

// RecoveryMailer is the outbound contract with the Notification Sender: it
// delivers the recovery link by email. Implementations must be time-boxed; a
// delivery failure is logged by the caller and never surfaces to the end user.
type RecoveryMailer interface {
	// SendRecoveryEmail delivers the password recovery link to the address.
	SendRecoveryEmail(ctx context.Context, address, link, displayName string) error
}

package entity

// AccountStatus models the lifecycle of a Credential's authentication status.
// The original flags on the legacy schema were bare integers; a typed enum makes
// valid transitions explicit.
type AccountStatus string

const (
	// AccountStatusPending marks a credential awaiting administrator approval
	// (ally registrations start here).
	AccountStatusPending AccountStatus = "pendiente"
	// AccountStatusActive marks a credential that may log in.
	AccountStatusActive AccountStatus = "activo"
	// AccountStatusDisabled marks a deactivated credential. Accounts are
	// deactivated, never deleted, to preserve referential integrity.
	AccountStatusDisabled AccountStatus = "inactivo"
)

// CanLogin reports whether the status allows issuing a session token.
func (s AccountStatus) CanLogin() bool {
	return s == AccountStatusActive
}

// CanTransitionTo reports whether moving to the target status is a valid step in
// the account state machine.
func (s AccountStatus) CanTransitionTo(target AccountStatus) bool {
	switch s {
	case AccountStatusPending:
		return target == AccountStatusActive || target == AccountStatusDisabled
	case AccountStatusActive:
		return target == AccountStatusDisabled
	case AccountStatusDisabled:
		return target == AccountStatusActive
	default:
		return false
	}
}

// RecordStatus is the uniform soft-delete status shared by persons and catalog
// entities: rows flip to inactive instead of being removed.
type RecordStatus string

const (
	// RecordStatusActive marks a visible row.
	RecordStatusActive RecordStatus = "activo"
	// RecordStatusInactive marks a soft-deactivated row.
	RecordStatusInactive RecordStatus = "inactivo"
)

// IsActive reports whether the row should appear in active listings.
func (s RecordStatus) IsActive() bool {
	return s == RecordStatusActive
}

// AuthProvider tags where a credential's secret lives.
type AuthProvider string

const (
	// AuthProviderLocal is a locally stored bcrypt password hash.
	AuthProviderLocal AuthProvider = "local"
	// AuthProviderExternal is reserved for federated identities.
	AuthProviderExternal AuthProvider = "externo"
)

package models

// TenantStatus is the lifecycle status of a tenant
type TenantStatus string

const (
	TenantStatusActive          TenantStatus = "active"
	TenantStatusSuspended       TenantStatus = "suspended"
	TenantStatusTrial           TenantStatus = "trial"
	TenantStatusPendingDeletion TenantStatus = "pending_deletion"
	TenantStatusDeleted         TenantStatus = "deleted"
)

// IsValid checks if the TenantStatus is valid
func (s TenantStatus) IsValid() bool {
	switch s {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusTrial,
		TenantStatusPendingDeletion, TenantStatusDeleted:
		return true
	}
	return false
}

// CanAuthenticate reports whether users of a tenant in this status may sign in.
func (s TenantStatus) CanAuthenticate() bool {
	return s == TenantStatusActive || s == TenantStatusTrial
}

var tenantTransitions = map[TenantStatus][]TenantStatus{
	TenantStatusActive:          {TenantStatusSuspended, TenantStatusTrial, TenantStatusPendingDeletion},
	TenantStatusSuspended:       {TenantStatusActive, TenantStatusTrial, TenantStatusPendingDeletion},
	TenantStatusTrial:           {TenantStatusActive, TenantStatusSuspended, TenantStatusPendingDeletion},
	TenantStatusPendingDeletion: {TenantStatusActive, TenantStatusDeleted},
}

// CanTransitionTo reports whether the tenant state machine allows s -> next.
// deleted is terminal.
func (s TenantStatus) CanTransitionTo(next TenantStatus) bool {
	for _, allowed := range tenantTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionStatus is derived from the clock and revocation fields, never stored
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusExpired SessionStatus = "expired"
	SessionStatusRevoked SessionStatus = "revoked"
)

// RevocationReason explains why a session was revoked
type RevocationReason string

const (
	RevocationUserLogout        RevocationReason = "user_logout"
	RevocationUserLogoutAll     RevocationReason = "user_logout_all"
	RevocationAdminAction       RevocationReason = "admin_action"
	RevocationSecurityIncident  RevocationReason = "security_incident"
	RevocationPasswordChange    RevocationReason = "password_change"
	RevocationAccountSuspension RevocationReason = "account_suspension"
	RevocationSessionTimeout    RevocationReason = "session_timeout"
)

// IsValid checks if the RevocationReason is valid
func (r RevocationReason) IsValid() bool {
	switch r {
	case RevocationUserLogout, RevocationUserLogoutAll, RevocationAdminAction,
		RevocationSecurityIncident, RevocationPasswordChange,
		RevocationAccountSuspension, RevocationSessionTimeout:
		return true
	}
	return false
}

// InvitationStatus is the status of a tenant invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRevoked:
		return true
	}
	return false
}

// User roles within a tenant
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleEditor  = "editor"
	RoleMember  = "member"
)

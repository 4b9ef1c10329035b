package scheduling

// Actor is the resolved identity every domain operation receives.
// Permission rules branch on IsAdmin here instead of per endpoint.
type Actor struct {
	UserID    string
	CompanyID uint
	IsAdmin   bool
}

// OwnsAppointment reports whether a non-admin actor may touch the
// appointment's client-side fields. Admins always may.
func (a Actor) OwnsAppointment(clientID *string) bool {
	if a.IsAdmin {
		return true
	}
	return clientID != nil && *clientID == a.UserID
}

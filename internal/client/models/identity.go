package models

// Identity sentinel values for ids that have not been assigned yet.
const (
	NoUserID  = -1
	NoOrderID = -1
	NoMenuID  = -1
)

// Identity is the device-bound session state that survives process death.
// Only the controller mutates it; the identity store persists it.
type Identity struct {
	SessionID     string
	UserID        int
	ActiveOrderID int
	LastLocation  *Location
	IsRegistered  bool
	LastScreen    Screen
}

// Established reports whether the backend has issued a session id.
func (i Identity) Established() bool {
	return i.SessionID != ""
}

// NewIdentity returns an identity with every field at its unset default.
func NewIdentity() Identity {
	return Identity{
		UserID:        NoUserID,
		ActiveOrderID: NoOrderID,
		LastScreen:    ScreenHome,
	}
}

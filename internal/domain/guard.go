package domain

import "github.com/google/uuid"

// AuthorizeMutation allows structural mutation and deletion only for the
// user who created the sauce. Rating deliberately does not pass through this
// guard: any authenticated user may vote on any sauce.
func AuthorizeMutation(sauce *Sauce, callerID uuid.UUID) error {
	if sauce.OwnerID != callerID {
		return ErrNotOwner
	}
	return nil
}

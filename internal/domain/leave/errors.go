package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrLeaveNotPending      = errors.New("Only pending leave requests can be deleted")
	ErrNotRequestOwner      = errors.New("You can only delete your own leave requests")
	ErrAdminOnly            = errors.New("Access denied. Admins only")
)

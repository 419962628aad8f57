package staff

import "errors"

var (
	ErrOnboardPermission  = errors.New("only a superuser or department leader may add staff")
	ErrDownloadPermission = errors.New("not allowed to download staff outside your department")
	ErrActivationInvalid  = errors.New("activation link is invalid or has expired")
	ErrAlreadyActive      = errors.New("account is already activated")
	ErrAccountLocked      = errors.New("locked accounts cannot be activated")
	ErrNoStaffSelected    = errors.New("no staff ids supplied")
)

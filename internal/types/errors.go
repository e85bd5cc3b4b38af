package types

import "errors"

var (
	ErrInvalidShiftType       = errors.New("not a valid shift type")
	ErrInvalidStaffRatio      = errors.New("not a valid staff ratio")
	ErrInvalidFundingCategory = errors.New("not a valid funding category")
)

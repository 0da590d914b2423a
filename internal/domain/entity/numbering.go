package entity

import (
	"fmt"
	"time"
)

// DocumentNumber builds a counter document number like EESAA-B1-042318 or
// RCP-F-591204. The hub codes as "F"; the trailing part is the last six
// digits of the millisecond clock, enough to keep numbers unique at counter
// speed.
func DocumentNumber(prefix, branchID string, at time.Time) string {
	code := branchID
	if branchID == HubBranchID {
		code = "F"
	}
	return fmt.Sprintf("%s-%s-%06d", prefix, code, at.UnixMilli()%1000000)
}

package workflow

import (
	"strings"

	"github.com/eassylife/b2bportal/utils"
)

// RemarkPolicy controls when an action's remarks are mandatory. The approval
// flow requires remarks for both decisions; the quotation flow requires them
// only for reject.
type RemarkPolicy int

const (
	RemarksAlwaysRequired RemarkPolicy = iota
	RemarksRequiredOnReject
)

// Validate checks the action and remarks locally. A failure here means no
// network call is made.
func (p RemarkPolicy) Validate(action, remarks string) error {
	if action != "approve" && action != "reject" {
		return utils.NewValidationError("action", "action must be approve or reject")
	}
	trimmed := strings.TrimSpace(remarks)
	if trimmed == "" {
		if action == "reject" || p == RemarksAlwaysRequired {
			return utils.NewValidationError("remarks", "remarks are required")
		}
	}
	return nil
}

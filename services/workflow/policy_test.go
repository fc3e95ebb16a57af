package workflow

import (
	"testing"

	"github.com/eassylife/b2bportal/utils"

	"github.com/stretchr/testify/assert"
)

func TestRemarkPolicy_Validate(t *testing.T) {
	cases := []struct {
		name    string
		policy  RemarkPolicy
		action  string
		remarks string
		ok      bool
	}{
		{"always/approve with remarks", RemarksAlwaysRequired, "approve", "fine", true},
		{"always/approve without remarks", RemarksAlwaysRequired, "approve", "", false},
		{"always/reject without remarks", RemarksAlwaysRequired, "reject", "", false},
		{"always/whitespace only", RemarksAlwaysRequired, "approve", "   ", false},
		{"reject-only/approve without remarks", RemarksRequiredOnReject, "approve", "", true},
		{"reject-only/reject without remarks", RemarksRequiredOnReject, "reject", "", false},
		{"reject-only/reject with remarks", RemarksRequiredOnReject, "reject", "price too high", true},
		{"unknown action", RemarksRequiredOnReject, "defer", "later", false},
		{"empty action", RemarksAlwaysRequired, "", "remarks", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate(tc.action, tc.remarks)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var verr *utils.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from   ApplicationStatus
		action ApplicationAction
		ok     bool
	}{
		{ApplicationStatusPending, ActionShortlist, true},
		{ApplicationStatusPending, ActionReject, true},
		{ApplicationStatusPending, ActionScheduleInterview, false},
		{ApplicationStatusShortlisted, ActionScheduleInterview, true},
		{ApplicationStatusShortlisted, ActionShortlist, false},
		{ApplicationStatusShortlisted, ActionReject, true},
		{ApplicationStatusAccepted, ActionAccept, true},
		{ApplicationStatusAccepted, ActionReject, true},
		{ApplicationStatusAccepted, ActionShortlist, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.Allows(tc.action), "%s --%s-->", tc.from, tc.action)
	}
}

func TestApplicationStatus_RejectedIsTerminal(t *testing.T) {
	assert.True(t, ApplicationStatusRejected.Terminal())
	for _, a := range []ApplicationAction{ActionShortlist, ActionScheduleInterview, ActionAccept, ActionReject} {
		assert.False(t, ApplicationStatusRejected.Allows(a), a)
	}
}

func TestApplicationStatus_Label(t *testing.T) {
	assert.Equal(t, "Interviewing", ApplicationStatusAccepted.Label())
	assert.Equal(t, "Pending", ApplicationStatusPending.Label())
	assert.Equal(t, "custom", ApplicationStatus("custom").Label())
}

func TestApplicationAction_Target(t *testing.T) {
	assert.Equal(t, ApplicationStatusShortlisted, ActionShortlist.Target())
	assert.Equal(t, ApplicationStatusAccepted, ActionScheduleInterview.Target())
	assert.Equal(t, ApplicationStatusRejected, ActionReject.Target())
	assert.False(t, ApplicationAction("hire").Valid())
}

func TestOfferDecision(t *testing.T) {
	assert.Equal(t, OfferStatusAccepted, OfferDecisionAccept.Result())
	assert.Equal(t, OfferStatusDeclined, OfferDecisionDecline.Result())
	assert.False(t, OfferDecision("maybe").Valid())
}

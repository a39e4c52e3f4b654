package models

type UserRole string
type ApplicationStatus string
type ApplicationAction string
type OfferStatus string
type OfferDecision string

const (
	UserRoleJobSeeker UserRole = "jobSeeker"
	UserRoleCompany   UserRole = "company"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	ActionShortlist         ApplicationAction = "shortlist"
	ActionScheduleInterview ApplicationAction = "scheduleInterview"
	ActionAccept            ApplicationAction = "accept"
	ActionReject            ApplicationAction = "reject"

	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"

	OfferDecisionAccept  OfferDecision = "accept"
	OfferDecisionDecline OfferDecision = "decline"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Label - подпись статуса в интерфейсе. accepted показывается как "Interviewing".
func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationStatusPending:
		return "Pending"
	case ApplicationStatusShortlisted:
		return "Shortlisted"
	case ApplicationStatusAccepted:
		return "Interviewing"
	case ApplicationStatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// Terminal - из rejected переходов нет
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusRejected
}

var applicationTransitions = map[ApplicationAction]map[ApplicationStatus]bool{
	ActionShortlist: {
		ApplicationStatusPending: true,
	},
	ActionScheduleInterview: {
		ApplicationStatusShortlisted: true,
	},
	ActionAccept: {
		ApplicationStatusAccepted: true,
	},
	ActionReject: {
		ApplicationStatusPending:     true,
		ApplicationStatusShortlisted: true,
		ApplicationStatusAccepted:    true,
	},
}

func (a ApplicationAction) Valid() bool {
	_, ok := applicationTransitions[a]
	return ok
}

// Target - статус отклика после действия компании
func (a ApplicationAction) Target() ApplicationStatus {
	switch a {
	case ActionShortlist:
		return ApplicationStatusShortlisted
	case ActionScheduleInterview, ActionAccept:
		return ApplicationStatusAccepted
	case ActionReject:
		return ApplicationStatusRejected
	}
	return ""
}

// Allows сообщает, допустимо ли действие для текущего статуса
func (s ApplicationStatus) Allows(a ApplicationAction) bool {
	return applicationTransitions[a][s]
}

func (d OfferDecision) Valid() bool {
	return d == OfferDecisionAccept || d == OfferDecisionDecline
}

func (d OfferDecision) Result() OfferStatus {
	if d == OfferDecisionAccept {
		return OfferStatusAccepted
	}
	return OfferStatusDeclined
}

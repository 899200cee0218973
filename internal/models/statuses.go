package models

type UserType string
type ApplicationStatus string

const (
	UserTypeBusiness UserType = "business"
	UserTypeWorker   UserType = "worker"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

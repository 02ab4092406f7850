package domain

// SubjectType differentiates user vs company tokens.
type SubjectType string

const (
	SubjectTypeUser    SubjectType = "USER"
	SubjectTypeCompany SubjectType = "COMPANY"
)

package model

// RoleCounts is the number of submissions per respondent group.
type RoleCounts struct {
	Teacher  int64 `json:"teacher"`
	Student  int64 `json:"student"`
	Guardian int64 `json:"guardian"`
}

// SchoolMonitoring is one row of the field-work monitoring table.
type SchoolMonitoring struct {
	SchoolName         string     `json:"school_name"`
	RectorName         string     `json:"rector_name"`
	CurrentPosition    string     `json:"current_position"`
	PersonalEmail      string     `json:"personal_email"`
	InstitutionalEmail string     `json:"institutional_email"`
	PersonalPhone      string     `json:"personal_phone"`
	InstitutionalPhone string     `json:"institutional_phone"`
	PreferredContact   string     `json:"preferred_contact"`
	Submissions        RoleCounts `json:"submissions"`
	MeetsMinimum       bool       `json:"meets_minimum"`
}

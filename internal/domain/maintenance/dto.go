package maintenance

// TableCounts reports row counts of the operational tables.
type TableCounts struct {
	Users      int `json:"users"`
	Employees  int `json:"employees"`
	Attendance int `json:"attendance"`
}

// ResetResponse confirms what a database reset removed and what it kept.
type ResetResponse struct {
	AttendanceDeleted int    `json:"attendance_deleted"`
	EmployeesDeleted  int    `json:"employees_deleted"`
	UsersKept         int    `json:"users_kept"`
	Message           string `json:"message"`
}

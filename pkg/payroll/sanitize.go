package payroll

// Float returns a pointer to v, for building records in code.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for building records in code.
func Int(v int) *int {
	return &v
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Sanitize returns the record with every missing numeric field set to zero.
// A missing risk class becomes zero and is normalized to class 1 by Calculate.
func (r EmployeeRecord) Sanitize() EmployeeInput {
	in := EmployeeInput{
		Name:                   r.Name,
		BaseSalary:             valueOrZero(r.BaseSalary),
		DaysWorked:             valueOrZero(r.DaysWorked),
		DaytimeOvertimeHours:   valueOrZero(r.DaytimeOvertimeHours),
		NighttimeOvertimeHours: valueOrZero(r.NighttimeOvertimeHours),
		HolidayOvertimeHours:   valueOrZero(r.HolidayOvertimeHours),
		NightSurchargeHours:    valueOrZero(r.NightSurchargeHours),
	}
	if r.RiskClass != nil {
		in.RiskClass = *r.RiskClass
	}
	return in
}

// Payable reports whether the row is a complete employee entry. Rows with a
// non-positive base salary are not calculated.
func (in EmployeeInput) Payable() bool {
	return in.BaseSalary > 0
}

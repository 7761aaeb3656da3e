package payroll

import "testing"

func TestSanitizeZeroFillsEachField(t *testing.T) {
	empty := EmployeeRecord{Name: "Nadie"}
	got := empty.Sanitize()
	want := EmployeeInput{Name: "Nadie"}
	if got != want {
		t.Errorf("Sanitize() of empty record = %+v, expected %+v", got, want)
	}

	full := EmployeeRecord{
		Name:                   "Ana",
		BaseSalary:             Float(2000000),
		DaysWorked:             Float(30),
		DaytimeOvertimeHours:   Float(1),
		NighttimeOvertimeHours: Float(2),
		HolidayOvertimeHours:   Float(3),
		NightSurchargeHours:    Float(4),
		RiskClass:              Int(2),
	}
	base := full.Sanitize()

	// Clearing any one field must behave like an explicit zero for that field only.
	clears := map[string]func(r *EmployeeRecord){
		"BaseSalary":             func(r *EmployeeRecord) { r.BaseSalary = nil },
		"DaysWorked":             func(r *EmployeeRecord) { r.DaysWorked = nil },
		"DaytimeOvertimeHours":   func(r *EmployeeRecord) { r.DaytimeOvertimeHours = nil },
		"NighttimeOvertimeHours": func(r *EmployeeRecord) { r.NighttimeOvertimeHours = nil },
		"HolidayOvertimeHours":   func(r *EmployeeRecord) { r.HolidayOvertimeHours = nil },
		"NightSurchargeHours":    func(r *EmployeeRecord) { r.NightSurchargeHours = nil },
		"RiskClass":              func(r *EmployeeRecord) { r.RiskClass = nil },
	}
	zeros := map[string]func(in *EmployeeInput){
		"BaseSalary":             func(in *EmployeeInput) { in.BaseSalary = 0 },
		"DaysWorked":             func(in *EmployeeInput) { in.DaysWorked = 0 },
		"DaytimeOvertimeHours":   func(in *EmployeeInput) { in.DaytimeOvertimeHours = 0 },
		"NighttimeOvertimeHours": func(in *EmployeeInput) { in.NighttimeOvertimeHours = 0 },
		"HolidayOvertimeHours":   func(in *EmployeeInput) { in.HolidayOvertimeHours = 0 },
		"NightSurchargeHours":    func(in *EmployeeInput) { in.NightSurchargeHours = 0 },
		"RiskClass":              func(in *EmployeeInput) { in.RiskClass = 0 },
	}

	for field, unset := range clears {
		t.Run(field, func(t *testing.T) {
			record := full
			unset(&record)
			want := base
			zeros[field](&want)
			if got := record.Sanitize(); got != want {
				t.Errorf("Sanitize() with %s missing = %+v, expected %+v", field, got, want)
			}
		})
	}
}

func TestSanitizedMissingMatchesExplicitZero(t *testing.T) {
	lc := constants2026(t)
	missing := EmployeeRecord{BaseSalary: Float(1750905)}
	explicit := EmployeeRecord{
		BaseSalary:             Float(1750905),
		DaysWorked:             Float(0),
		DaytimeOvertimeHours:   Float(0),
		NighttimeOvertimeHours: Float(0),
		HolidayOvertimeHours:   Float(0),
		NightSurchargeHours:    Float(0),
		RiskClass:              Int(0),
	}

	a := Calculate(missing.Sanitize(), defaultConfig(), lc)
	b := Calculate(explicit.Sanitize(), defaultConfig(), lc)
	if a != b {
		t.Errorf("missing fields %+v differ from explicit zeros %+v", a, b)
	}
}

func TestPayable(t *testing.T) {
	tests := []struct {
		salary float64
		want   bool
	}{
		{-100, false},
		{0, false},
		{0.01, true},
		{1750905, true},
	}
	for _, tt := range tests {
		if got := (EmployeeInput{BaseSalary: tt.salary}).Payable(); got != tt.want {
			t.Errorf("Payable() with salary %v = %v, expected %v", tt.salary, got, tt.want)
		}
	}
}

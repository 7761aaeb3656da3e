package validation

import (
	"fmt"

	"github.com/iwvelando/nomina/pkg/constants"
	"github.com/iwvelando/nomina/pkg/legal"
	"github.com/iwvelando/nomina/pkg/mathutil"
	"github.com/iwvelando/nomina/pkg/payroll"
)

// ValidateRoster reports values the calculator accepts but that are likely
// data-entry mistakes: negative hours, days worked outside [0, 30] and risk
// classes outside 1..5. Warnings never stop a calculation.
func ValidateRoster(records []payroll.EmployeeRecord) []string {
	var warnings []string
	for i, record := range records {
		label := rowLabel(i, record.Name)

		if record.DaysWorked != nil {
			if days := *record.DaysWorked; mathutil.IsNegative(days) || days > constants.MaxDaysWorked {
				warnings = append(warnings, fmt.Sprintf("%s: days worked %.2f outside [0, %d]", label, days, constants.MaxDaysWorked))
			}
		}

		hours := []struct {
			field string
			value *float64
		}{
			{"daytime overtime", record.DaytimeOvertimeHours},
			{"nighttime overtime", record.NighttimeOvertimeHours},
			{"holiday overtime", record.HolidayOvertimeHours},
			{"night surcharge", record.NightSurchargeHours},
		}
		for _, h := range hours {
			if h.value != nil && mathutil.IsNegative(*h.value) {
				warnings = append(warnings, fmt.Sprintf("%s: negative %s hours %.2f", label, h.field, *h.value))
			}
		}

		if record.RiskClass != nil {
			if class := *record.RiskClass; class != legal.NormalizeRiskClass(class) {
				warnings = append(warnings, fmt.Sprintf("%s: risk class %d outside 1-%d, using class 1", label, class, legal.MaxRiskClass))
			}
		}
	}
	return warnings
}

func rowLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("row %d", index+1)
	}
	return fmt.Sprintf("row %d (%s)", index+1, name)
}

package api

import "shift-scheduler/internal/model"

func NewShiftResponse(s model.Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		CreatedAt:    s.CreatedAt,
		EmployeeName: s.EmployeeName,
		EmployeeCode: s.EmployeeCode,
	}
}

// NewShiftList never returns nil so an empty list encodes as [].
func NewShiftList(shifts []model.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, NewShiftResponse(s))
	}
	return out
}

func NewEmployeeList(employees []model.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, EmployeeResponse{ID: e.ID, Name: e.Name, EmployeeCode: e.EmployeeCode})
	}
	return out
}

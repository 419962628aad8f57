package attendance

import "time"

type CreateAttendanceRequest struct {
	Title            string `json:"title"`
	RequestContent   string `json:"request_content"`
	AttendanceTypeID string `json:"attendance_type_id"`
	StartTime        string `json:"start_time"` // RFC3339
	EndTime          string `json:"end_time"`   // RFC3339
}

// DecideAttendanceRequest is the partial update accepted by the decision
// endpoint: the new status plus the approver's remark.
type DecideAttendanceRequest struct {
	Status          string `json:"status"`
	ApprovalContent string `json:"approval_content"`
}

type AttendanceResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	RequestContent     string     `json:"request_content"`
	AttendanceTypeID   string     `json:"attendance_type_id"`
	AttendanceTypeName *string    `json:"attendance_type_name,omitempty"`
	RequesterID        string     `json:"requester_id"`
	RequesterName      *string    `json:"requester_name,omitempty"`
	ResponserID        *string    `json:"responser_id,omitempty"`
	ResponserName      *string    `json:"responser_name,omitempty"`
	Status             Status     `json:"status"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	ApprovalTime       *time.Time `json:"approval_time,omitempty"`
	ApprovalContent    *string    `json:"approval_content,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AttendanceTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                 a.ID,
		Title:              a.Title,
		RequestContent:     a.RequestContent,
		AttendanceTypeID:   a.AttendanceTypeID,
		AttendanceTypeName: a.AttendanceTypeName,
		RequesterID:        a.RequesterID,
		RequesterName:      a.RequesterName,
		ResponserID:        a.ResponserID,
		ResponserName:      a.ResponserName,
		Status:             a.Status,
		StartTime:          a.StartTime,
		EndTime:            a.EndTime,
		ApprovalTime:       a.ApprovalTime,
		ApprovalContent:    a.ApprovalContent,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

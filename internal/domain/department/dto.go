package department

type DepartmentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Introduction string  `json:"introduction"`
	LeaderID     *string `json:"leader_id,omitempty"`
	LeaderName   *string `json:"leader_name,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	ManagerName  *string `json:"manager_name,omitempty"`
}

type UpdateLeaderRequest struct {
	DepartmentID string `json:"department_id"`
	NewLeaderID  string `json:"new_leader_id"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Introduction: d.Introduction,
		LeaderID:     d.LeaderID,
		LeaderName:   d.LeaderName,
		ManagerID:    d.ManagerID,
		ManagerName:  d.ManagerName,
	}
}

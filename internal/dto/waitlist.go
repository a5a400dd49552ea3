package dto

type ReorderRequestDTO struct {
	OrderedIDs []int `json:"ordered_ids" validate:"required,min=1,dive,gt=0" example:"3,1,2"`
}

type RemoveResponseDTO struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty" example:"enrollment was already paid, a refund may be owed"`
}

type WaitlistEntryDTO struct {
	EnrollmentID int    `json:"enrollment_id" example:"17"`
	Position     int    `json:"position" example:"1"`
	CreatedAt    string `json:"created_at" example:"2025-03-14T10:00:00Z"`
}

package dto

type SignupRequestDTO struct {
	SectionID         int    `json:"section_id" validate:"required,gt=0" example:"1"`
	PaymentSessionRef string `json:"payment_session_ref" validate:"required" example:"cs_a1b2c3d4"`
}

type SignupResponseDTO struct {
	EnrollmentID     int    `json:"enrollment_id" example:"17"`
	SectionID        int    `json:"section_id" example:"1"`
	PaymentStatus    string `json:"payment_status" example:"WAITLISTED"`
	WaitlistPosition *int   `json:"waitlist_position,omitempty" example:"2"`
}

type ConfirmPaymentRequestDTO struct {
	PaymentSessionRef string `json:"payment_session_ref" validate:"required" example:"cs_a1b2c3d4"`
}

type SectionResponseDTO struct {
	ID            int    `json:"id" example:"1"`
	Label         string `json:"label" example:"Tuesday evening"`
	MaxCapacity   int    `json:"max_capacity" example:"5"`
	EnrolledCount int    `json:"enrolled_count" example:"5"`
	Status        string `json:"status" example:"OPEN"`
}

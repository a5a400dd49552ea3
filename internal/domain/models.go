package domain

import "time"

type Section struct {
	ID            int       `db:"id"`
	Label         string    `db:"label"`
	MaxCapacity   int       `db:"max_capacity"`
	EnrolledCount int       `db:"enrolled_count"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Enrollment struct {
	ID                int       `db:"id"`
	SectionID         int       `db:"section_id"`
	PaymentStatus     string    `db:"payment_status"`
	WaitlistPosition  *int      `db:"waitlist_position"`
	PaymentSessionRef string    `db:"payment_session_ref"`
	CreatedAt         time.Time `db:"created_at"`
}

type Admin struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

package models

import (
	"time"
)

// User represents an authenticated user of the panel.
type User struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Order is a reviewed contract extraction saved to the panel. ItemsJSON holds
// the contracted products exactly as the review screen submitted them.
type Order struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	ClientName     string    `db:"client_name" json:"client_name"`
	ClientCPF      string    `db:"client_cpf" json:"client_cpf"`
	ClientPhone    string    `db:"client_phone" json:"client_phone"`
	ClientEmail    string    `db:"client_email" json:"client_email"`
	EventDate      string    `db:"event_date" json:"event_date"`
	EventLocation  string    `db:"event_location" json:"event_location"`
	ItemsJSON      string    `db:"items_json" json:"items_json"`
	OrderTotal     string    `db:"order_total" json:"order_total"`
	PaymentDate    string    `db:"payment_date" json:"payment_date"`
	PaymentMethod  string    `db:"payment_method" json:"payment_method"`
	Responsible    string    `db:"responsible" json:"responsible"`
	ReferralSource string    `db:"referral_source" json:"referral_source"`
	SourceURL      string    `db:"source_url" json:"source_url"` // S3 URL of the uploaded contract, if any
	Embedding      []float32 `db:"embedding" json:"-"`           // pgvector column
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

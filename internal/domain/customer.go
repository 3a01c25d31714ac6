package domain

import "time"

// Customer represents a registered customer in the directory
type Customer struct {
	CustomerID  string
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
}

// Vehicle represents a customer's vehicle in the directory
type Vehicle struct {
	RegistrationNo string
	CustomerID     string
	Make           *string
	Model          *string
}

// User represents an admin operator account
type User struct {
	Email        string
	PasswordHash string
}

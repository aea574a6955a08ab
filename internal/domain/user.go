package domain

// UserType role carried in the access token
type UserType string

const (
	UserTypeProvider UserType = "provider"
	UserTypeCustomer UserType = "customer"
)

// IsValid checks the user type
func (t UserType) IsValid() bool {
	return t == UserTypeProvider || t == UserTypeCustomer
}

// User contact data of a registered account
type User struct {
	ID       int64
	Email    string
	FullName string
	UserType UserType
}

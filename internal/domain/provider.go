package domain

import "time"

// EmailServiceType kind of outbound email account configured by a provider
type EmailServiceType string

const (
	EmailServiceSMTP     EmailServiceType = "smtp"
	EmailServiceGmail    EmailServiceType = "gmail"
	EmailServiceSendGrid EmailServiceType = "sendgrid"
)

// IsValid checks the email service type
func (t EmailServiceType) IsValid() bool {
	switch t {
	case EmailServiceSMTP, EmailServiceGmail, EmailServiceSendGrid:
		return true
	default:
		return false
	}
}

// Provider is a business profile owned by a provider user
type Provider struct {
	ID           int64
	UserID       int64
	BusinessName string
	Description  *string
	Phone        *string
	Address      *string
	Email        EmailConfig
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmailConfig is the provider-owned outbound email credential.
// PasswordEncrypted holds hex(iv):hex(ciphertext) and is never decrypted at rest.
type EmailConfig struct {
	ServiceType       *EmailServiceType
	Host              *string
	Port              *int
	Secure            bool
	User              *string
	FromEmail         *string
	PasswordEncrypted *string
}

// HasCredential reports whether the provider configured its own mailbox
func (c *EmailConfig) HasCredential() bool {
	return c.ServiceType != nil && c.PasswordEncrypted != nil && *c.PasswordEncrypted != ""
}

// ProviderUpdate partial update of a provider profile, nil fields are kept
type ProviderUpdate struct {
	BusinessName *string
	Description  *string
	Phone        *string
	Address      *string
}

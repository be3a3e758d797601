package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	CertificateStatusValid   = "Valid"
	CertificateStatusExpired = "Expired"
	CertificateStatusRevoked = "Revoked"

	// IssueDateLayout is the wire format of Certificate.IssueDate.
	IssueDateLayout = "2006-01-02"
)

// CertificateStatuses lists every accepted certificate status.
var CertificateStatuses = []string{
	CertificateStatusValid,
	CertificateStatusExpired,
	CertificateStatusRevoked,
}

// Certificate is an issued course certificate. CertNumber is the public lookup key.
type Certificate struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	StudentName string         `gorm:"size:255;not null" json:"student_name"`
	CourseName  string         `gorm:"size:255;not null;index" json:"course_name"`
	IssueDate   datatypes.Date `gorm:"not null" json:"issue_date"`
	CertNumber  string         `gorm:"uniqueIndex;size:100;not null" json:"cert_number"`
	Status      string         `gorm:"size:20;not null;default:'Valid'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// IsValid reports whether the certificate is currently on file as Valid.
func (c Certificate) IsValid() bool {
	return c.Status == CertificateStatusValid
}

func (c Certificate) IssuedOn() time.Time {
	return time.Time(c.IssueDate)
}

// MarshalJSON renders issue_date as a calendar date instead of a timestamp.
func (c Certificate) MarshalJSON() ([]byte, error) {
	type alias Certificate
	return json.Marshal(struct {
		alias
		IssueDate string `json:"issue_date"`
	}{
		alias:     alias(c),
		IssueDate: c.IssuedOn().Format(IssueDateLayout),
	})
}

// IsCertificateStatus reports whether s is one of CertificateStatuses.
func IsCertificateStatus(s string) bool {
	for _, status := range CertificateStatuses {
		if s == status {
			return true
		}
	}
	return false
}

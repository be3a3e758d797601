package certificateService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reachout/models"
	"reachout/repository"

	"github.com/jinzhu/now"
	"gorm.io/datatypes"
)

var (
	ErrNumberRequired = errors.New("certificate number is required")
	ErrNotFound       = errors.New("certificate not found")
	ErrDuplicate      = errors.New("certificate number already exists")
	ErrInvalidDate    = errors.New("invalid issue date format")
	ErrInvalidStatus  = errors.New("invalid certificate status")
)

// dateParser reads issue dates in UTC so the stored calendar day never shifts.
var dateParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats:  now.TimeFormats,
}

// Verification is the outcome of a public lookup.
type Verification struct {
	Certificate *models.Certificate
	Valid       bool
}

// IssueInput carries the fields of a new certificate.
type IssueInput struct {
	StudentName string
	CourseName  string
	IssueDate   string
	CertNumber  string
	Status      string
}

type Service struct {
	certs repository.CertificateStore
}

func NewService(certs repository.CertificateStore) *Service {
	return &Service{certs: certs}
}

// VerifyByNumber looks up a certificate by its exact number, after trimming
// surrounding whitespace. A non-Valid status is not an error: the record
// comes back with Valid=false.
func (s *Service) VerifyByNumber(ctx context.Context, number string) (*Verification, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrNumberRequired
	}

	cert, err := s.certs.FindByNumber(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find certificate %q: %w", number, err)
	}

	return &Verification{Certificate: cert, Valid: cert.IsValid()}, nil
}

// List returns all certificates, newest first.
func (s *Service) List(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.certs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// Get returns one certificate by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Certificate, error) {
	cert, err := s.certs.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find certificate %d: %w", id, err)
	}
	return cert, nil
}

// Issue validates and stores a new certificate. Status defaults to Valid.
func (s *Service) Issue(ctx context.Context, in IssueInput) (*models.Certificate, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.CertificateStatusValid
	}
	if !models.IsCertificateStatus(status) {
		return nil, ErrInvalidStatus
	}

	number := strings.TrimSpace(in.CertNumber)
	_, err := s.certs.FindByNumber(ctx, number)
	switch {
	case err == nil:
		return nil, ErrDuplicate
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find certificate %q: %w", number, err)
	}

	issueDate, err := ParseIssueDate(in.IssueDate)
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		StudentName: strings.TrimSpace(in.StudentName),
		CourseName:  strings.TrimSpace(in.CourseName),
		IssueDate:   issueDate,
		CertNumber:  number,
		Status:      status,
	}
	if err := s.certs.Create(ctx, cert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	return cert, nil
}

// Delete removes a certificate; ErrNotFound when the id does not exist.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.certs.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete certificate %d: %w", id, err)
	}
	return nil
}

// ParseIssueDate accepts the common date and timestamp layouts and keeps
// only the calendar day.
func ParseIssueDate(raw string) (datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return datatypes.Date{}, ErrInvalidDate
	}

	t, err := dateParser.Parse(raw)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}

	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
}

package crptgate

import (
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// dateTimeLayout is the wire format for date-time fields: local date and
// time without zone or epoch encoding.
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime wraps time.Time with the remote endpoint's date-time encoding.
type DateTime struct {
	time.Time
}

// NewDateTime returns a DateTime for t.
func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.Format(dateTimeLayout)), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	d.Time = t
	return nil
}

// Description carries the participant identifier block of a document.
type Description struct {
	ParticipantINN string `json:"participantInn,omitempty"`
}

// Product is one product record inside a document.
type Product struct {
	CertificateDocument       string    `json:"certificate_document,omitempty"`
	CertificateDocumentDate   *DateTime `json:"certificate_document_date,omitempty"`
	CertificateDocumentNumber string    `json:"certificate_document_number,omitempty"`
	OwnerINN                  string    `json:"owner_inn,omitempty"`
	ProducerINN               string    `json:"producer_inn,omitempty"`
	ProductionDate            *DateTime `json:"production_date,omitempty"`
	TnvedCode                 string    `json:"tnved_code,omitempty"`
	UitCode                   string    `json:"uit_code,omitempty"`
	UituCode                  string    `json:"uitu_code,omitempty"`
}

// Document is the payload submitted to the documents/create endpoint.
// Unset fields are omitted from the encoded form.
type Document struct {
	Description    *Description `json:"description,omitempty"`
	DocID          string       `json:"doc_id,omitempty"`
	DocStatus      string       `json:"doc_status,omitempty"`
	DocType        string       `json:"doc_type,omitempty"`
	ImportRequest  bool         `json:"importRequest"`
	OwnerINN       string       `json:"owner_inn,omitempty"`
	ParticipantINN string       `json:"participant_inn,omitempty"`
	ProducerINN    string       `json:"producer_inn,omitempty"`
	ProductionDate *DateTime    `json:"production_date,omitempty"`
	ProductionType string       `json:"production_type,omitempty"`
	Products       []Product    `json:"products,omitempty"`
	RegDate        *DateTime    `json:"reg_date,omitempty"`
	RegNumber      string       `json:"reg_number,omitempty"`
}

// NewDocumentID generates a lexicographically sortable document identifier
// for callers that do not carry a remote-assigned one.
func NewDocumentID() string {
	return ulid.Make().String()
}

// Validate checks the identifier fields a submission cannot do without.
func (d Document) Validate() error {
	if d.DocID == "" {
		return ErrMissingDocID
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"owner_inn", d.OwnerINN},
		{"participant_inn", d.ParticipantINN},
		{"producer_inn", d.ProducerINN},
	} {
		if err := validateINN(f.name, f.value); err != nil {
			return err
		}
	}
	if d.Description != nil {
		if err := validateINN("description.participantInn", d.Description.ParticipantINN); err != nil {
			return err
		}
	}
	for i, p := range d.Products {
		if err := validateINN(fmt.Sprintf("products[%d].owner_inn", i), p.OwnerINN); err != nil {
			return err
		}
		if err := validateINN(fmt.Sprintf("products[%d].producer_inn", i), p.ProducerINN); err != nil {
			return err
		}
	}
	return nil
}

// validateINN checks an INN identifier: empty is allowed, otherwise it must
// be 10 or 12 decimal digits.
func validateINN(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) != 10 && len(value) != 12 {
		return fmt.Errorf("%w: %s must be 10 or 12 digits, got %d", ErrInvalidINN, field, len(value))
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return fmt.Errorf("%w: %s contains non-digit %q at position %d", ErrInvalidINN, field, value[i], i)
		}
	}
	return nil
}

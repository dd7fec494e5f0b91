package crptgate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_MarshalFormat(t *testing.T) {
	dt := NewDateTime(time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC))

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T09:30:45"`, string(data))
}

func TestDateTime_Roundtrip(t *testing.T) {
	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T09:30:45"`), &dt))
	assert.Equal(t, 2024, dt.Year())
	assert.Equal(t, 45, dt.Second())
}

func TestDateTime_UnmarshalInvalid(t *testing.T) {
	var dt DateTime
	err := json.Unmarshal([]byte(`"15.03.2024"`), &dt)
	require.ErrorIs(t, err, ErrInvalidDateTime)

	err = json.Unmarshal([]byte(`1710495045`), &dt)
	require.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestDocument_MarshalOmitsUnsetFields(t *testing.T) {
	doc := Document{
		DocID:     "doc-1",
		DocType:   "LP_INTRODUCE_GOODS",
		OwnerINN:  "7700000000",
		RegNumber: "reg-1",
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "doc_id")
	assert.Contains(t, raw, "owner_inn")
	assert.Contains(t, raw, "importRequest")
	assert.NotContains(t, raw, "description")
	assert.NotContains(t, raw, "doc_status")
	assert.NotContains(t, raw, "production_date")
	assert.NotContains(t, raw, "products")
	assert.NotContains(t, raw, "reg_date")
}

func TestDocument_MarshalFull(t *testing.T) {
	prodDate := NewDateTime(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	doc := Document{
		Description:    &Description{ParticipantINN: "7700000000"},
		DocID:          "doc-2",
		DocStatus:      "DRAFT",
		DocType:        "LP_INTRODUCE_GOODS",
		ImportRequest:  true,
		OwnerINN:       "7700000000",
		ParticipantINN: "7700000000",
		ProducerINN:    "770000000012",
		ProductionDate: prodDate,
		ProductionType: "OWN_PRODUCTION",
		Products: []Product{
			{
				CertificateDocument:       "CONFORMITY_CERTIFICATE",
				CertificateDocumentDate:   prodDate,
				CertificateDocumentNumber: "cert-1",
				OwnerINN:                  "7700000000",
				ProducerINN:               "770000000012",
				ProductionDate:            prodDate,
				TnvedCode:                 "6403",
				UitCode:                   "uit-1",
			},
		},
		RegDate:   prodDate,
		RegNumber: "reg-2",
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-01-10T00:00:00", raw["production_date"])

	products, ok := raw["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 1)
	product := products[0].(map[string]any)
	assert.Equal(t, "6403", product["tnved_code"])
	// uitu_code was never set
	assert.NotContains(t, product, "uitu_code")
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{"valid minimal", Document{DocID: "doc-1"}, nil},
		{"valid with INNs", Document{DocID: "doc-1", OwnerINN: "7700000000", ProducerINN: "770000000012"}, nil},
		{"missing doc_id", Document{}, ErrMissingDocID},
		{"short INN", Document{DocID: "doc-1", OwnerINN: "123"}, ErrInvalidINN},
		{"non-digit INN", Document{DocID: "doc-1", ParticipantINN: "77000000ab"}, ErrInvalidINN},
		{
			"bad description INN",
			Document{DocID: "doc-1", Description: &Description{ParticipantINN: "x"}},
			ErrInvalidINN,
		},
		{
			"bad product INN",
			Document{DocID: "doc-1", Products: []Product{{OwnerINN: "99"}}},
			ErrInvalidINN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewDocumentID(t *testing.T) {
	a := NewDocumentID()
	b := NewDocumentID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

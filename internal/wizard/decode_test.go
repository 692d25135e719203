package wizard

import (
	"encoding/json"
	"testing"

	"go-gin-event-wizard/internal/model"
	apperrors "go-gin-event-wizard/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name  string
		field model.Field
		raw   string
		want  any
	}{
		{"text", model.FieldTitle, `"Live Music Festival"`, "Live Music Festival"},
		{"number as text", model.FieldMaxCapacity, `500`, "500"},
		{"date string", model.FieldDate, `"2026-11-14"`, "2026-11-14"},
		{"date null clears", model.FieldDate, `null`, nil},
		{"string list", model.FieldAmenities, `["Parking","Wi-Fi"]`, []string{"Parking", "Wi-Fi"}},
		{"tiers", model.FieldTicketTypes, `[{"name":"VIP","price":"50"}]`, []model.TicketTier{{Name: "VIP", Price: "50"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeValue(tt.field, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeValue_Rejects(t *testing.T) {
	_, err := DecodeValue("venue_name", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, apperrors.ErrUnknownField)

	_, err = DecodeValue(model.FieldTitle, json.RawMessage(`{"a":1}`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = DecodeValue(model.FieldAmenities, json.RawMessage(`"Parking"`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = DecodeValue(model.FieldTicketTypes, json.RawMessage(`null`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)

	_, err = DecodeValue(model.FieldTitle, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidValue)
}

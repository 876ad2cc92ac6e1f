package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	membership := Membership{RecID: 1, MID: 10, StartDate: NewDate(2024, time.March, 5)}

	data, err := json.Marshal(membership)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rec_id":1,"M_ID":10,"Start_date":"2024-03-05","End_date":null}`, string(data))

	var decoded Membership
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, membership, decoded)
}

func TestDate_UnmarshalRejectsBadLayout(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &d))
	assert.Error(t, d.UnmarshalParam("2024-13-01"))

	require.NoError(t, d.UnmarshalParam(""))
	assert.False(t, d.Valid)
}

func TestShipmentDetail_NestsCustomerUnderReferenceKey(t *testing.T) {
	detail := ShipmentDetail{
		Shipment: Shipment{RecID: 3, SHID: 300, CustomerID: 2},
		Customer: &Customer{RecID: 2, CID: 200, Name: "Acme"},
	}

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	nested, ok := raw["C_ID"].(map[string]any)
	require.True(t, ok, "C_ID should carry the nested customer")
	assert.Equal(t, "Acme", nested["C_NAME"])
	assert.InDelta(t, 300, raw["SH_ID"], 0)
}

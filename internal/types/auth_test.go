//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{name: "valid", request: LoginRequest{EmployeeID: 104, Password: "secret"}},
		{name: "missing employee id", request: LoginRequest{Password: "secret"}, wantErr: true},
		{name: "negative employee id", request: LoginRequest{EmployeeID: -1, Password: "secret"}, wantErr: true},
		{name: "missing password", request: LoginRequest{EmployeeID: 104}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWillingnessBatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		batch   WillingnessBatch
		wantErr bool
	}{
		{
			name:  "valid",
			batch: WillingnessBatch{Items: []WillingnessUpdate{{MatchingListID: 5, IsWilling: true}, {MatchingListID: 6}}},
		},
		{name: "nil items", batch: WillingnessBatch{}, wantErr: true},
		{name: "empty items", batch: WillingnessBatch{Items: []WillingnessUpdate{}}, wantErr: true},
		{
			name:    "matching list id beyond key range",
			batch:   WillingnessBatch{Items: []WillingnessUpdate{{MatchingListID: 1 << 40, IsWilling: true}}},
			wantErr: true,
		},
		{
			name:  "largest matching list id",
			batch: WillingnessBatch{Items: []WillingnessUpdate{{MatchingListID: 2147483647}}},
		},
		{
			name:    "zero matching list id",
			batch:   WillingnessBatch{Items: []WillingnessUpdate{{MatchingListID: 0, IsWilling: true}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.batch.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWillingnessResult_Partial(t *testing.T) {
	assert.True(t, (&WillingnessResult{Submitted: 3, UpdatedCount: 2}).Partial())
	assert.False(t, (&WillingnessResult{Submitted: 2, UpdatedCount: 2}).Partial())
}

func TestWillingnessResult_Summary(t *testing.T) {
	assert.Equal(t, NoRecordsUpdatedMessage, (&WillingnessResult{Submitted: 2}).Summary())

	msg := (&WillingnessResult{Submitted: 3, UpdatedCount: 2, WillingCount: 1, NotWillingCount: 1}).Summary()
	assert.Contains(t, msg, "2 service orders processed")
	assert.Contains(t, msg, "1 willing, 1 not willing")
}

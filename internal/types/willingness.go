package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// WillingnessUpdate is one employee-submitted flag for a matching list row.
type WillingnessUpdate struct {
	MatchingListID int  `json:"matching_list_id" validate:"required,gt=0,lte=2147483647"`
	IsWilling      bool `json:"is_willing"`
}

// WillingnessBatch is the request body of a willingness submission.
type WillingnessBatch struct {
	Items []WillingnessUpdate `json:"items" validate:"required,min=1,dive"`
}

// Validate validates the WillingnessBatch using the validator.
func (b *WillingnessBatch) Validate() error {
	validate := validator.New()
	return validate.Struct(b)
}

// ItemOutcome records whether one submitted item was applied.
type ItemOutcome struct {
	MatchingListID int  `json:"matching_list_id"`
	IsWilling      bool `json:"is_willing"`
	Updated        bool `json:"updated"`
}

// WillingnessResult summarizes a batch. WillingCount and NotWillingCount only
// count items that were actually updated.
type WillingnessResult struct {
	Submitted       int           `json:"submitted"`
	UpdatedCount    int           `json:"updated_count"`
	WillingCount    int           `json:"willing_count"`
	NotWillingCount int           `json:"not_willing_count"`
	Outcomes        []ItemOutcome `json:"outcomes"`
	UsedFallback    bool          `json:"-"`
}

// Partial reports whether some submitted items were not applied.
func (r *WillingnessResult) Partial() bool {
	return r.UpdatedCount < r.Submitted
}

// NoRecordsUpdatedMessage is reported when a batch changed nothing.
const NoRecordsUpdatedMessage = "No matching records found to update."

// Summary renders the user-facing outcome of the batch.
func (r *WillingnessResult) Summary() string {
	if r.UpdatedCount == 0 {
		return NoRecordsUpdatedMessage
	}
	return fmt.Sprintf("Willingness preferences updated successfully! (%d service orders processed: %d willing, %d not willing)",
		r.UpdatedCount, r.WillingCount, r.NotWillingCount)
}

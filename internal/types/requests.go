package types

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// PersonalUpdateRequest sets one contact field.
type PersonalUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value" validate:"max=500"`
}

// SummaryUpdateRequest replaces the summary paragraph.
type SummaryUpdateRequest struct {
	Summary string `json:"summary" validate:"max=5000"`
}

// ItemUpdateRequest sets one field of a list item. Value is a string, a
// boolean or a list of strings depending on the field.
type ItemUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// ListUpdateRequest replaces a flat list, either with explicit items or with
// a newline-separated text block.
type ListUpdateRequest struct {
	Items []string `json:"items,omitempty" validate:"required_without=Text,dive,max=500"`
	Text  *string  `json:"text,omitempty" validate:"required_without=Items"`
}

// Validate validates the PersonalUpdateRequest using the validator.
func (r *PersonalUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SummaryUpdateRequest using the validator.
func (r *SummaryUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ItemUpdateRequest using the validator.
func (r *ItemUpdateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ListUpdateRequest using the validator.
func (r *ListUpdateRequest) Validate() error {
	return validate.Struct(r)
}

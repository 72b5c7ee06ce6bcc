package models

import "fmt"

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return NewValidationError("option_type", fmt.Sprintf("invalid option type: %s", o))
	}

	return nil
}

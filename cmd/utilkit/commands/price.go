package commands

import (
	"fmt"

	"github.com/utilkit-io/utilkit/pricefmt"
)

// RunPrice renders an amount as a currency string. The amount is taken as
// a decimal string so the shell never mangles large or fractional values.
func RunPrice(io IOTuple, amount, currency, notation string) error {
	if amount == "" {
		return fmt.Errorf("amount argument is required")
	}

	result, err := pricefmt.Format(amount, pricefmt.Options{
		Currency: currency,
		Notation: pricefmt.Notation(notation),
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, result)
	return nil
}

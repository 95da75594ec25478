// Package format holds the pt-BR display transformations applied to
// table views: dates rendered as DD/MM/YYYY and money prefixed with "R$".
package format

import (
	"fmt"
	"time"
)

const (
	// ISODate is the storage form of dates across the API
	ISODate = "2006-01-02"

	brDate = "02/01/2006"
)

// BRDate converts an ISO date (storage form) to its DD/MM/YYYY display form.
// An unparseable value is returned as-is.
func BRDate(iso string) string {
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return iso
	}
	return t.Format(brDate)
}

// BRMoney renders a monetary amount with the local currency prefix.
func BRMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

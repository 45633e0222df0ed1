package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct checks field presence only; the store's schema is the sole
// line of defense for types and ranges.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Pname) == "" {
		errs = append(errs, ProductValidationError{Field: "pname", Description: "pname is required"})
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, ProductValidationError{Field: "description", Description: "description is required"})
	}
	if p.Price == nil {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price is required"})
	}
	if p.Stock == nil {
		errs = append(errs, ProductValidationError{Field: "stock", Description: "stock is required"})
	}
	return errs
}

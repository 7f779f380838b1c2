package validation

import (
	"reflect"
	"regexp"
	"strings"

	apperrors "finsight/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the pipeline's custom
// rules and error formatting. Every transformer output passes through it
// before being handed to callers.
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("isin", validateISIN)
	_ = v.RegisterValidation("money_units", validateMoneyUnits)
	_ = v.RegisterValidation("bank_txn_type", validateBankTxnType)
	_ = v.RegisterValidation("stock_txn_type", validateStockTxnType)
	_ = v.RegisterValidation("mf_txn_type", validateMfTxnType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// CheckRecord validates a transformed domain record. A failure is terminal
// for the fetch: it means transformer and validator are out of sync with the
// aggregator and must never be silently coerced.
func (v *Validator) CheckRecord(domain string, record any) error {
	if err := v.validate.Struct(record); err != nil {
		return apperrors.Wrapf(apperrors.ValidationSchemaDrift, err,
			"%s record failed schema validation", domain)
	}
	return nil
}

// Custom validation functions

var isinPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// validateISIN validates an International Securities Identification Number:
// two-letter country code, nine alphanumerics, one check digit
func validateISIN(fl validator.FieldLevel) bool {
	return isinPattern.MatchString(fl.Field().String())
}

// validateMoneyUnits validates that the units component parses as a finite decimal
func validateMoneyUnits(fl validator.FieldLevel) bool {
	units := fl.Field().String()
	if units == "" {
		return false
	}
	_, err := decimal.NewFromString(units)
	return err == nil
}

// validateBankTxnType validates a bank transaction direction
func validateBankTxnType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CREDIT", "DEBIT", "OTHER":
		return true
	}
	return false
}

// validateStockTxnType validates an equity transaction type, including the
// explicit UNKNOWN variant used for unmapped upstream codes
func validateStockTxnType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "BUY", "SELL", "BONUS", "SPLIT", "UNKNOWN":
		return true
	}
	return false
}

// validateMfTxnType validates a mutual-fund transaction type
func validateMfTxnType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PURCHASE", "SELL":
		return true
	}
	return false
}

// internal/core/services/validator.go
package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// insertRecord mirrors a payload for struct validation. Nil means absent
// or null.
type insertRecord struct {
	Name          *string `json:"name" validate:"required"`
	SupplierName  *string `json:"supplier_name" validate:"required"`
	SupplierPhone *string `json:"supplier_phone" validate:"required"`
	Price         *int64  `json:"price" validate:"omitempty,gte=0"`
	Quantity      *int64  `json:"quantity" validate:"omitempty,gte=0"`
}

// Validator applies the product field rules to write payloads.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by column name.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateForInsert requires the three text fields and checks numeric ranges.
func (v *Validator) ValidateForInsert(p domain.Payload) error {
	rec := insertRecord{
		Name:          p.Name.Ptr(),
		SupplierName:  p.SupplierName.Ptr(),
		SupplierPhone: p.SupplierPhone.Ptr(),
		Price:         p.Price.Ptr(),
		Quantity:      p.Quantity.Ptr(),
	}

	failed := map[string]validator.FieldError{}
	if err := v.validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			failed[fe.Field()] = fe
		}
	}

	nulls := map[string]bool{
		domain.ColumnPrice:    p.Price.IsNull(),
		domain.ColumnQuantity: p.Quantity.IsNull(),
	}

	for _, field := range payloadFields {
		if fe, ok := failed[field]; ok {
			return &domain.PayloadError{Field: field, Reason: reason(fe.Tag(), fe.Param())}
		}
		if nulls[field] {
			return &domain.PayloadError{Field: field, Reason: "must not be null"}
		}
	}
	return nil
}

// ValidateForUpdate checks only the keys present in p. A null text field
// is rejected; a null numeric is left for the store to refuse.
func (v *Validator) ValidateForUpdate(p domain.Payload) error {
	texts := []struct {
		field string
		value domain.Value[string]
	}{
		{domain.ColumnName, p.Name},
		{domain.ColumnSupplierName, p.SupplierName},
		{domain.ColumnSupplierPhone, p.SupplierPhone},
	}
	for _, t := range texts {
		if t.value.IsAbsent() {
			continue
		}
		if err := v.validate.Var(t.value.Ptr(), "required"); err != nil {
			return fieldError(t.field, err)
		}
	}

	numbers := []struct {
		field string
		value domain.Value[int64]
	}{
		{domain.ColumnPrice, p.Price},
		{domain.ColumnQuantity, p.Quantity},
	}
	for _, n := range numbers {
		val, ok := n.value.Get()
		if !ok {
			continue
		}
		if err := v.validate.Var(val, "gte=0"); err != nil {
			return fieldError(n.field, err)
		}
	}
	return nil
}

var payloadFields = []string{
	domain.ColumnName,
	domain.ColumnSupplierName,
	domain.ColumnSupplierPhone,
	domain.ColumnPrice,
	domain.ColumnQuantity,
}

func fieldError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &domain.PayloadError{Field: field, Reason: reason(verrs[0].Tag(), verrs[0].Param())}
	}
	return err
}

func reason(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + param
	default:
		return "is invalid"
	}
}

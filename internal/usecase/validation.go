package usecase

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/vertexinvest/checkout/internal/domain/errors"
	"github.com/vertexinvest/checkout/internal/domain/model"
)

type customerForm struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=40"`
	CPFCNPJ string `json:"cpf_cnpj" validate:"required,cpfcnpj"`
}

var customerValidator = newCustomerValidator()

func newCustomerValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	if err := v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		return ValidTaxID(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// NormalizeCustomer trims surrounding whitespace from every field.
func NormalizeCustomer(c model.CustomerData) model.CustomerData {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.CPFCNPJ = strings.TrimSpace(c.CPFCNPJ)
	if c.Address != nil {
		addr := strings.TrimSpace(*c.Address)
		if addr == "" {
			c.Address = nil
		} else {
			c.Address = &addr
		}
	}
	return c
}

// ValidateCustomer checks the intake form and reports the first offending field.
func ValidateCustomer(c model.CustomerData) error {
	err := customerValidator.Struct(customerForm{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		CPFCNPJ: c.CPFCNPJ,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainErrors.Validation("customer_data", err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return domainErrors.Validation(fe.Field(), "is required")
	case "email":
		return domainErrors.Validation(fe.Field(), "must be a valid e-mail address")
	case "cpfcnpj":
		return domainErrors.Validation(fe.Field(), "must have 11 (CPF) or 14 (CNPJ) digits")
	case "max":
		return domainErrors.Validation(fe.Field(), "is too long")
	default:
		return domainErrors.Validation(fe.Field(), "is invalid")
	}
}

// ValidTaxID accepts a CPF (11 digits) or CNPJ (14 digits), allowing the usual . - / separators.
func ValidTaxID(raw string) bool {
	digits := 0
	for _, r := range raw {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == '-' || r == '/' || r == ' ':
		default:
			return false
		}
	}
	return digits == 11 || digits == 14
}

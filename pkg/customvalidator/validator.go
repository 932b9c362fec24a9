package customvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"freight-admin/internal/entities"
	"freight-admin/pkg/types"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterCustomValidations registers the domain rules on v and makes
// validation errors report json field names.
func RegisterCustomValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"email":        isGoodEmailFormat,
		"zip5":         isZip5,
		"zip_or_range": isZipOrRange,
		"address_role": oneOfStrings(string(entities.AddressRoleCorporate), string(entities.AddressRoleBilling), string(entities.AddressRolePrimary)),
		"charge_type":  oneOfStrings(string(entities.ChargeTypePerPound), string(entities.ChargeTypeFlatValue), string(entities.ChargeTypeHourly)),
		"rate_type":    oneOfStrings(string(entities.RateTypeTransport), string(entities.RateTypeWarehouse)),
		"active_flag":  oneOfStrings(types.ActiveStatusYes, types.ActiveStatusNo),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isZip5(fl validator.FieldLevel) bool {
	return types.IsZip5(fl.Field().String())
}

func isZipOrRange(fl validator.FieldLevel) bool {
	_, err := types.ParseZipQuery(fl.Field().String())
	return err == nil
}

func oneOfStrings(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, a := range allowed {
			if val == a {
				return true
			}
		}
		return false
	}
}

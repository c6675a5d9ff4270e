package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharRegex  = regexp.MustCompile(`^[0-9]{12}$`)
	mobileRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
	ifscRegex    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func IsValidPAN(pan string) bool {
	return panRegex.MatchString(pan)
}

func IsValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(aadhar)
}

func IsValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

func IsValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

func IsValidIFSC(ifsc string) bool {
	return ifscRegex.MatchString(ifsc)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// RegisterValidations adds the Indian-identity format checks to gin's
// binding engine so request structs can use them as binding tags.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return IsValidPAN(fl.Field().String())
	})
	v.RegisterValidation("aadhar", func(fl validator.FieldLevel) bool {
		return IsValidAadhar(fl.Field().String())
	})
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return IsValidMobile(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return IsValidPincode(fl.Field().String())
	})
	v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return IsValidIFSC(fl.Field().String())
	})
}

package utils

import "testing"

func TestIsValidPAN(t *testing.T) {
	valid := []string{"ABCDE1234F", "ZZZZZ9999Z"}
	invalid := []string{"", "abcde1234f", "ABCD1234EF", "ABCDE12345", "ABCDE1234", "ABCDE1234FX"}

	for _, pan := range valid {
		if !IsValidPAN(pan) {
			t.Errorf("IsValidPAN(%q) = false, want true", pan)
		}
	}
	for _, pan := range invalid {
		if IsValidPAN(pan) {
			t.Errorf("IsValidPAN(%q) = true, want false", pan)
		}
	}
}

func TestIsValidAadhar(t *testing.T) {
	if !IsValidAadhar("123456789012") {
		t.Error("12-digit Aadhar rejected")
	}
	for _, aadhar := range []string{"", "12345678901", "1234567890123", "12345678901a"} {
		if IsValidAadhar(aadhar) {
			t.Errorf("IsValidAadhar(%q) = true, want false", aadhar)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	if !IsValidMobile("9876543210") {
		t.Error("10-digit mobile rejected")
	}
	for _, mobile := range []string{"", "987654321", "98765432101", "98765alpha"} {
		if IsValidMobile(mobile) {
			t.Errorf("IsValidMobile(%q) = true, want false", mobile)
		}
	}
}

func TestIsValidPincode(t *testing.T) {
	if !IsValidPincode("110001") {
		t.Error("6-digit pincode rejected")
	}
	for _, pincode := range []string{"", "11000", "1100011", "11000a"} {
		if IsValidPincode(pincode) {
			t.Errorf("IsValidPincode(%q) = true, want false", pincode)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"SBIN0001234", "HDFC0CAG123"}
	invalid := []string{"", "SBIN1001234", "SBI00012345", "sbin0001234", "SBIN000123"}

	for _, ifsc := range valid {
		if !IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = false, want true", ifsc)
		}
	}
	for _, ifsc := range invalid {
		if IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = true, want false", ifsc)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("user@example.com") {
		t.Error("plain email rejected")
	}
	for _, email := range []string{"", "user", "user@", "@example.com", "user example@x.com"} {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

package customers

import (
	"realty-admin-server/models"

	"gorm.io/gorm"
)

const (
	CodeDuplicateEmail  = "DUPLICATE_EMAIL"
	CodeDuplicateMobile = "DUPLICATE_MOBILE"
	CodeDuplicatePAN    = "DUPLICATE_PAN"
	CodeDuplicateAadhar = "DUPLICATE_AADHAR"
	CodeDuplicateID     = "DUPLICATE_CUSTOMER_ID"
)

// FieldConflict identifies which uniqueness-sensitive field collided, so
// the form can highlight the offending input.
type FieldConflict struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type uniqueField struct {
	column  string
	value   string
	field   string
	code    string
	message string
}

// findConflicts checks each uniqueness-sensitive field individually so the
// response can name every colliding field, not just the first. Fields with
// an empty value are skipped (the caller only passes values it intends to
// write). excludeID > 0 excludes the record being edited.
func findConflicts(tx *gorm.DB, fields []uniqueField, excludeID uint) ([]FieldConflict, error) {
	var conflicts []FieldConflict
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		query := tx.Model(&models.Customer{}).Where(f.column+" = ?", f.value)
		if excludeID > 0 {
			query = query.Where("id <> ?", excludeID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			conflicts = append(conflicts, FieldConflict{Field: f.field, Code: f.code, Message: f.message})
		}
	}
	return conflicts, nil
}

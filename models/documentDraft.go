package models

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

// DocumentDraft is a saved form state for one document instance. Saving a
// draft is always permitted; validation gates generation only.
type DocumentDraft struct {
	ID           uuid.UUID `gorm:"type:char(36);primary_key" json:"id"`
	DocumentType string    `gorm:"column:document_type;index" json:"document_type"`
	Reference    string    `gorm:"column:referance" json:"reference"`
	Values       []byte    `gorm:"column:field_values;type:json" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (d *DocumentDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// FieldValues decodes the stored value set.
func (d *DocumentDraft) FieldValues() (map[string]string, error) {
	values := map[string]string{}
	if len(d.Values) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(d.Values, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func CreateDraft(ctx context.Context, documentType string, reference string, values map[string]string) (*DocumentDraft, error) {
	blob, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	draft := &DocumentDraft{
		DocumentType: documentType,
		Reference:    reference,
		Values:       blob,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(draft).Error; err != nil {
		return nil, err
	}
	return draft, nil
}

func GetDraft(ctx context.Context, id uuid.UUID) (*DocumentDraft, error) {
	var draft DocumentDraft
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func UpdateDraft(ctx context.Context, id uuid.UUID, values map[string]string) (*DocumentDraft, error) {
	draft, err := GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	blob, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(draft).Update("field_values", blob).Error; err != nil {
		return nil, err
	}
	draft.Values = blob
	return draft, nil
}

func ListDrafts(ctx context.Context, documentType string) ([]DocumentDraft, error) {
	var drafts []DocumentDraft
	db := config.GetDB().WithContext(ctx).Order("updated_at DESC")
	if documentType != "" {
		db = db.Where("document_type = ?", documentType)
	}
	if err := db.Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

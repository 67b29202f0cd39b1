package services

import (
	"encoding/json"
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemRejectsNegativePrice(t *testing.T) {
	svc := NewMenuService(nil)

	_, err := svc.CreateItem(models.MenuItem{Name: "Pad Thai", Price: -100, CategoryID: 1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestCreateItemRequiresName(t *testing.T) {
	svc := NewMenuService(nil)

	_, err := svc.CreateItem(models.MenuItem{Price: 100, CategoryID: 1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestUpdateItemFieldsRejectsNegativePrice(t *testing.T) {
	svc := NewMenuService(nil)

	// -50 arrives as float64, the way gin decodes any JSON number.
	_, err := svc.UpdateItemFields(1, map[string]interface{}{"price": float64(-50)})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestSanitizeItemUpdates(t *testing.T) {
	tests := []struct {
		name    string
		updates map[string]interface{}
		wantErr bool
	}{
		{"strips protected columns", map[string]interface{}{"id": 99, "created_at": "2026-01-01", "name": "Green Curry"}, false},
		{"float price accepted", map[string]interface{}{"price": float64(2500)}, false},
		{"json.Number price accepted", map[string]interface{}{"price": json.Number("1200")}, false},
		{"negative price rejected", map[string]interface{}{"price": float64(-1)}, true},
		{"negative json.Number rejected", map[string]interface{}{"price": json.Number("-300")}, true},
		{"non-numeric price rejected", map[string]interface{}{"price": "free"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeItemUpdates(tt.updates)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "price", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, got, "id")
			assert.NotContains(t, got, "created_at")
			if raw, ok := got["price"]; ok {
				// Normalized so gorm writes a plain integer column value.
				assert.IsType(t, int64(0), raw)
			}
		})
	}
}

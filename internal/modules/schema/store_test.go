package schema

import (
	"context"
	"testing"

	"github.com/ororso11/m-led/internal/shared/apperr"
)

// guardStore builds a Store around a fixed document. The guard branches
// under test all return before any database write happens.
func guardStore() *Store {
	return &Store{doc: Document{
		Categories: map[string]CategoryDefinition{
			PrimaryCategoryKey: {Label: "PRODUCT TYPE", Values: []string{AllValue, "DOWNLIGHT"}},
			"watt":             {Label: "WATT", Values: []string{"10W", "20W"}},
		},
		Columns: []TableColumn{
			{ID: "weightkg", Label: "Weight (kg)"},
			{ID: "voltage", Label: "VOLTAGE"},
		},
		Version: 1,
	}}
}

func wantKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != kind {
		t.Fatalf("error = %v, want kind %q", err, kind)
	}
}

func TestAddColumnRejectsDuplicateID(t *testing.T) {
	s := guardStore()

	// "WEIGHT-KG" derives the same id as the existing "Weight (kg)" column.
	_, err := s.AddColumn(context.Background(), "WEIGHT-KG", "")
	wantKind(t, err, apperr.Conflict)

	_, err = s.AddColumn(context.Background(), "Weight (kg)", "")
	wantKind(t, err, apperr.Conflict)
}

func TestAddColumnRequiresLabel(t *testing.T) {
	s := guardStore()
	for _, label := range []string{"", "   "} {
		_, err := s.AddColumn(context.Background(), label, "")
		wantKind(t, err, apperr.Invalid)
	}
}

func TestAddCategoryGuards(t *testing.T) {
	s := guardStore()

	wantKind(t, s.AddCategory(context.Background(), "", "WATT"), apperr.Invalid)
	wantKind(t, s.AddCategory(context.Background(), "watt", ""), apperr.Invalid)
	wantKind(t, s.AddCategory(context.Background(), "Beam-Angle", "BEAM ANGLE"), apperr.Invalid)
	wantKind(t, s.AddCategory(context.Background(), "watt", "WATT"), apperr.Conflict)
}

func TestAddCategoryValueGuards(t *testing.T) {
	s := guardStore()

	wantKind(t, s.AddCategoryValue(context.Background(), "watt", "   "), apperr.Invalid)
	wantKind(t, s.AddCategoryValue(context.Background(), "watt", "10W"), apperr.Conflict)
	wantKind(t, s.AddCategoryValue(context.Background(), "lumen", "800lm"), apperr.NotFound)
}

func TestDeleteCategoryGuards(t *testing.T) {
	s := guardStore()

	wantKind(t, s.DeleteCategory(context.Background(), PrimaryCategoryKey), apperr.Invalid)
	wantKind(t, s.DeleteCategory(context.Background(), "lumen"), apperr.NotFound)
}

func TestDeleteCategoryValueNotFound(t *testing.T) {
	s := guardStore()

	wantKind(t, s.DeleteCategoryValue(context.Background(), "watt", "99W"), apperr.NotFound)
	wantKind(t, s.DeleteCategoryValue(context.Background(), "lumen", "10W"), apperr.NotFound)
}

func TestDeleteColumnNotFound(t *testing.T) {
	s := guardStore()
	wantKind(t, s.DeleteColumn(context.Background(), "nosuch"), apperr.NotFound)
}

func TestSaveRequiresPrimaryCategory(t *testing.T) {
	s := guardStore()
	err := s.Save(context.Background(), map[string]CategoryDefinition{
		"watt": {Label: "WATT", Values: []string{"10W"}},
	}, nil, 1)
	wantKind(t, err, apperr.Invalid)
}

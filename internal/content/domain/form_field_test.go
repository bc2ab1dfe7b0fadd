package domain

import (
	"reflect"
	"testing"
)

func TestOptionListTrimsAndDropsEmpties(t *testing.T) {
	field := FormField{Options: " Veg , Non-Veg ,, Jain "}
	got := field.OptionList()
	want := []string{"Veg", "Non-Veg", "Jain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OptionList() = %v, want %v", got, want)
	}
}

func TestValidateTextField(t *testing.T) {
	field := FormField{ID: "name", Label: "Full Name", Type: FieldText, Required: true}

	if err := field.ValidateValue("Ramesh"); err != nil {
		t.Errorf("valid text: %v", err)
	}
	if err := field.ValidateValue("   "); err == nil {
		t.Error("blank required text must fail")
	}
	if err := field.ValidateValue(nil); err == nil {
		t.Error("missing required text must fail")
	}

	field.Required = false
	if err := field.ValidateValue(""); err != nil {
		t.Errorf("optional blank text: %v", err)
	}
}

func TestValidateSelectField(t *testing.T) {
	field := FormField{
		ID:       "prasadam",
		Label:    "Prasadam Choice",
		Type:     FieldSelect,
		Required: true,
		Options:  "Laddu, Pulihora, Daddojanam",
	}

	if err := field.ValidateValue("Pulihora"); err != nil {
		t.Errorf("valid option: %v", err)
	}
	if err := field.ValidateValue("Pizza"); err == nil {
		t.Error("off-list value must fail")
	}
	if err := field.ValidateValue(""); err == nil {
		t.Error("empty required select must fail")
	}

	field.Required = false
	if err := field.ValidateValue(""); err != nil {
		t.Errorf("optional empty select: %v", err)
	}
	// Even optional, a present value must match an option
	if err := field.ValidateValue("Pizza"); err == nil {
		t.Error("off-list value must fail even when optional")
	}
}

func TestValidateCheckboxField(t *testing.T) {
	field := FormField{ID: "terms", Label: "Terms", Type: FieldCheckbox, Required: true}

	if err := field.ValidateValue(true); err != nil {
		t.Errorf("checked: %v", err)
	}
	if err := field.ValidateValue(false); err == nil {
		t.Error("unchecked required checkbox must fail")
	}
	if err := field.ValidateValue("yes"); err == nil {
		t.Error("non-bool value counts as unchecked")
	}

	field.Required = false
	if err := field.ValidateValue(false); err != nil {
		t.Errorf("optional unchecked: %v", err)
	}
}

func TestFormFieldsRoundTripThroughJSONB(t *testing.T) {
	fields := FormFields{
		{ID: "name", Label: "Name", Type: FieldText, Required: true},
		{ID: "meal", Label: "Meal", Type: FieldRadio, Options: "Veg,Non-Veg"},
	}

	value, err := fields.Value()
	if err != nil {
		t.Fatal(err)
	}

	var decoded FormFields
	if err := decoded.Scan(value); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, fields) {
		t.Errorf("decoded %+v, want %+v", decoded, fields)
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2026-01-14"); err != nil {
		t.Errorf("valid date: %v", err)
	}
	for _, bad := range []string{"", "14-01-2026", "2026/01/14", "not-a-date"} {
		if err := ValidateDate(bad); err == nil {
			t.Errorf("date %q must fail", bad)
		}
	}
}

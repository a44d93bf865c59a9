package validation

import (
	"testing"

	"habitctl/internal/constants"
	"habitctl/internal/models"
)

func TestRegistration(t *testing.T) {
	tests := []struct {
		name    string
		data    models.RegisterData
		wantErr bool
	}{
		{
			name:    "valid",
			data:    models.RegisterData{Email: "a@b.com", Password: "secret1", FullName: "A B"},
			wantErr: false,
		},
		{
			name:    "valid with matching confirmation",
			data:    models.RegisterData{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"},
			wantErr: false,
		},
		{
			name:    "missing at sign",
			data:    models.RegisterData{Email: "nobody", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "bare at sign suffix",
			data:    models.RegisterData{Email: "nobody@", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "short password",
			data:    models.RegisterData{Email: "a@b.com", Password: "abc"},
			wantErr: true,
		},
		{
			name:    "confirmation mismatch",
			data:    models.RegisterData{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Registration(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Registration(%+v) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
		})
	}
}

func TestHabitData(t *testing.T) {
	tests := []struct {
		name    string
		data    models.HabitData
		wantErr bool
	}{
		{
			name:    "valid boolean habit",
			data:    models.HabitData{Name: "Read", HabitType: constants.HabitTypeBoolean},
			wantErr: false,
		},
		{
			name:    "valid with color and target",
			data:    models.HabitData{Name: "Run", HabitType: constants.HabitTypeDuration, TargetValue: 30, Color: "#3B82F6"},
			wantErr: false,
		},
		{
			name:    "empty name",
			data:    models.HabitData{Name: "  ", HabitType: constants.HabitTypeBoolean},
			wantErr: true,
		},
		{
			name:    "unknown type",
			data:    models.HabitData{Name: "Read", HabitType: "weekly"},
			wantErr: true,
		},
		{
			name:    "bad color",
			data:    models.HabitData{Name: "Read", Color: "blue"},
			wantErr: true,
		},
		{
			name:    "negative target",
			data:    models.HabitData{Name: "Read", TargetValue: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HabitData(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("HabitData(%+v) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{"#3B82F6", false},
		{"#abcdef", false},
		{"3B82F6", true},
		{"#3B82F", true},
		{"#GGGGGG", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := Color(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("Color(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestDate(t *testing.T) {
	if err := Date("2024-01-01"); err != nil {
		t.Errorf("Date(2024-01-01) error = %v", err)
	}
	if err := Date("01/01/2024"); err == nil {
		t.Error("Date(01/01/2024) should fail")
	}
	if err := Date("2024-13-40"); err == nil {
		t.Error("Date(2024-13-40) should fail")
	}
}

package utils

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBMI(t *testing.T) {
	got, err := ComputeBMI(175, 75)
	if err != nil {
		t.Fatalf("ComputeBMI() error = %v", err)
	}
	want := 75 / (1.75 * 1.75)
	if math.Abs(got.Value-want) > 1e-9 {
		t.Errorf("Value = %v, want %v", got.Value, want)
	}
	if got.Category != "Normal weight" {
		t.Errorf("Category = %q, want %q", got.Category, "Normal weight")
	}
}

func TestComputeBMIRejectsImplausibleBodies(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 75},
		{"negative weight", 175, -1},
		{"height above range", 300, 75},
		{"height below range", 60, 75},
		{"weight above range", 175, 400},
		{"weight below range", 175, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBMI(tt.heightCm, tt.weightKg)
			if !errors.Is(err, ErrImplausibleBody) {
				t.Errorf("ComputeBMI() error = %v, want ErrImplausibleBody", err)
			}
		})
	}
}

func TestBMICategories(t *testing.T) {
	tests := []struct {
		heightCm float64
		weightKg float64
		want     string
	}{
		{175, 52, "Underweight"},
		{175, 70, "Normal weight"},
		{175, 85, "Overweight"},
		{175, 100, "Obese"},
	}
	for _, tt := range tests {
		got, err := ComputeBMI(tt.heightCm, tt.weightKg)
		if err != nil {
			t.Fatalf("ComputeBMI(%v, %v) error = %v", tt.heightCm, tt.weightKg, err)
		}
		if got.Category != tt.want {
			t.Errorf("ComputeBMI(%v, %v).Category = %q, want %q", tt.heightCm, tt.weightKg, got.Category, tt.want)
		}
	}
}

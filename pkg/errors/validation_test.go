package errors

import (
	"testing"
)

func TestValidateGenerations(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"minimum", 2, false},
		{"default", 4, false},
		{"maximum", 25, false},

		{"zero", 0, true},
		{"one", 1, true},
		{"too many", 26, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGenerations(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGenerations(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGenerations) {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidGenerations)
			}
		})
	}
}

func TestClampGenerations(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 4},
		{1, 2},
		{2, 2},
		{7, 7},
		{25, 25},
		{99, 25},
		{-1, 2},
	}

	for _, tt := range tests {
		if got := ClampGenerations(tt.in); got != tt.want {
			t.Errorf("ClampGenerations(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"down", "down", false},
		{"up", "up", false},
		{"right upper", "RIGHT", false},
		{"left", "left", false},

		{"empty", "", true},
		{"unknown", "diagonal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayout(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayout(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSex(t *testing.T) {
	for _, ok := range []string{"", "M", "F", "U"} {
		if err := ValidateSex(ok); err != nil {
			t.Errorf("ValidateSex(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"m", "X", "male"} {
		if err := ValidateSex(bad); !Is(err, ErrCodeInvalidRecord) {
			t.Errorf("ValidateSex(%q) = %v, want %s", bad, err, ErrCodeInvalidRecord)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "chart.svg", false},
		{"nested", "out/charts/chart.png", false},
		{"absolute", "/tmp/chart.pdf", false},
		{"dot inside name", "my..chart.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "chart\x00.svg", true},
		{"escapes", "../chart.svg", true},
		{"escapes after clean", "out/../../chart.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/media/1.jpg", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

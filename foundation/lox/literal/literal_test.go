package literal

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"integer number", Number(123), "123"},
		{"fractional number", Number(45.67), "45.67"},
		{"large number", Number(1e21), "1000000000000000000000"},
		{"fraction below one", Number(0.5), "0.5"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"null", Null(), "null"},
		{"zero value", Value{}, "null"},
		{"string", String("hello"), "hello"},
		{"empty string", String(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same number", Number(1.5), Number(1.5), true},
		{"different number", Number(1), Number(2), false},
		{"same string", String("a"), String("a"), true},
		{"different string", String("a"), String("b"), false},
		{"null null", Null(), Null(), true},
		{"bool mismatch", Bool(true), Bool(false), false},
		{"variant mismatch", String("1"), Number(1), false},
		{"null vs false", Null(), Bool(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	if n, ok := Number(3).AsNumber(); !ok || n != 3 {
		t.Errorf("AsNumber() = %v, %v", n, ok)
	}
	if _, ok := String("x").AsNumber(); ok {
		t.Error("AsNumber() on a string should report false")
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("AsString() = %v, %v", s, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("AsBool() = %v, %v", b, ok)
	}
	if !Null().IsNull() || Number(0).IsNull() {
		t.Error("IsNull() mismatch")
	}
	if Null().Interface() != nil || Number(2).Interface() != 2.0 {
		t.Error("Interface() mismatch")
	}
	if Number(1).Type().String() != "number" {
		t.Errorf("Type().String() = %q", Number(1).Type().String())
	}
}

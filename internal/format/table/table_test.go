package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"L", "Longitud", "metros → pies"},
		{"P", "Peso", "kilogramos → libras"},
		{"T", "Temperatura", "°C → °F"},
	}
	got := Format(rows, nil)
	want := []string{
		"L  Longitud     metros → pies",
		"P  Peso         kilogramos → libras",
		"T  Temperatura  °C → °F",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"a", "1"}, {"bb", "100"}}, []Alignment{AlignLeft, AlignRight})
	want := []string{"a     1", "bb  100"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}

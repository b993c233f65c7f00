package mathutil

import "testing"

func TestLimitInt(t *testing.T) {
	if v := LimitInt(5, 0, 10); v != 5 {
		t.Fatal(v)
	}
	if v := LimitInt(-1, 0, 10); v != 0 {
		t.Fatal(v)
	}
	if v := LimitInt(11, 0, 10); v != 10 {
		t.Fatal(v)
	}
}

func TestCeilFloat64(t *testing.T) {
	if v := CeilFloat64(1.1); v != 2 {
		t.Fatal(v)
	}
	if v := CeilFloat64(2.0); v != 2 {
		t.Fatal(v)
	}
	if v := CeilFloat64(0.0); v != 0 {
		t.Fatal(v)
	}
}

func TestRoundFloat64(t *testing.T) {
	if v := RoundFloat64(1.4); v != 1 {
		t.Fatal(v)
	}
	if v := RoundFloat64(1.5); v != 2 {
		t.Fatal(v)
	}
	if v := RoundFloat64(-1.5); v != -2 {
		t.Fatal(v)
	}
	if v := RoundFloat64(-1.4); v != -1 {
		t.Fatal(v)
	}
}

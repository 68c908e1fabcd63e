package ptrx

import "time"

// String devuelve un puntero al string dado
func String(s string) *string { return &s }

// Int devuelve un puntero al int dado
func Int(i int) *int { return &i }

// Bool devuelve un puntero al bool dado
func Bool(b bool) *bool { return &b }

// Time devuelve un puntero al time dado
func Time(t time.Time) *time.Time { return &t }

// StringValue des-referencia con fallback a ""
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

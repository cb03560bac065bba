// Package timex holds the small time and formatting helpers shared by the
// CLI: conversion between local wall-clock input and the UTC ISO-8601 strings
// the API expects, euro amount formatting, and a JSON-friendly Duration.
package timex

import (
	"fmt"
	"strings"
	"time"
)

// InputLayout is the wall-clock format accepted from the user,
// e.g. "2026-03-01T10:30".
const InputLayout = "2006-01-02T15:04"

// ToUTCISO parses a local wall-clock string in InputLayout and returns it as
// ISO-8601 UTC (RFC 3339). An empty input yields an empty output.
func ToUTCISO(local string) (string, error) {
	if local == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(InputLayout, local, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse local time %q: %w", local, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}

// ToLocalInput converts an ISO-8601 UTC timestamp back to the local
// wall-clock InputLayout form. Inverse of ToUTCISO for the same zone.
func ToLocalInput(iso string) (string, error) {
	if iso == "" {
		return "", nil
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", fmt.Errorf("parse timestamp %q: %w", iso, err)
	}
	return t.In(time.Local).Format(InputLayout), nil
}

// NowPlusDays returns the current local time shifted by the given number of
// days. Used to seed the default availability search window.
func NowPlusDays(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

// FormatMoney renders an amount in it-IT euro style: "1.234,56 €".
// A nil amount renders as "-".
func FormatMoney(amount *float64) string {
	if amount == nil {
		return "-"
	}

	neg := *amount < 0
	v := *amount
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	// Group the integer part with dots, thousands first.
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + frac + " €"
	if neg {
		out = "-" + out
	}
	return out
}

package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the ISO-8601 layout used for the timestamp column.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// legacyTimestampLayout has no zone offset and is read as local time.
const legacyTimestampLayout = "2006-01-02T15:04:05.999999"

// Header is the audit log schema, in column order.
var Header = []string{"timestamp", "card_hash", "is_valid", "card_type", "card_length"}

// Record is the persisted summary of one audited validation. It carries the
// digest and length of the card number, never the number itself.
type Record struct {
	ID         uuid.UUID
	Timestamp  time.Time
	CardHash   string
	IsValid    bool
	CardType   string
	CardLength int
}

// Fields renders the record in Header order.
func (r *Record) Fields() []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		r.CardHash,
		FormatValidity(r.IsValid),
		r.CardType,
		strconv.Itoa(r.CardLength),
	}
}

// ParseRecord builds a Record from fields in Header order. The card_hash column
// must hold a SHA3-256 or SHA3-512 hex digest.
func ParseRecord(fields []string) (*Record, error) {
	if len(fields) != len(Header) {
		return nil, ErrMalformedAuditLog
	}

	timestamp, err := parseTimestamp(fields[0])
	if err != nil {
		return nil, err
	}

	if !IsDigest(fields[1]) {
		return nil, ErrMalformedAuditLog
	}

	isValid, err := ParseValidity(fields[2])
	if err != nil {
		return nil, err
	}

	length, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, ErrMalformedAuditLog
	}

	return &Record{
		Timestamp:  timestamp,
		CardHash:   fields[1],
		IsValid:    isValid,
		CardType:   fields[3],
		CardLength: length,
	}, nil
}

// FormatValidity renders the is_valid column.
func FormatValidity(valid bool) string {
	return strconv.FormatBool(valid)
}

// ParseValidity reads the is_valid column. The legacy "Si"/"No" tokens are
// accepted too.
func ParseValidity(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "Si":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, ErrMalformedAuditLog
	}
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(legacyTimestampLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrMalformedAuditLog
}

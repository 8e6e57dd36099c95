package interpret

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUID decodes content that parses as exactly 128 bits via one of the
// canonical textual forms (hyphenated, simple, urn:uuid, braced).
type UUID struct{}

func (UUID) Name() string { return "UUID" }

func (UUID) Interpret(content string) *Result {
	u, err := uuid.Parse(strings.TrimSpace(content))
	if err != nil {
		return nil
	}

	items := []Item{
		textItem("Version", versionString(u.Version())),
		textItem("Variant", variantString(u.Variant())),
		textItem("Hyphenated", u.String()),
		textItem("Simple", hex.EncodeToString(u[:])),
		textItem("URN", u.URN()),
	}

	// Version 1 embeds a 60-bit Gregorian timestamp.
	if u.Version() == 1 {
		sec, nsec := u.Time().UnixTime()
		items = append(items, textItem("Timestamp", time.Unix(sec, nsec).UTC().Format(time.RFC3339Nano)))
	}

	return &Result{Items: items}
}

func versionString(v uuid.Version) string {
	if v >= 1 && v <= 5 {
		return strconv.Itoa(int(v))
	}
	return "unknown"
}

func variantString(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC 4122"
	case uuid.Microsoft:
		return "Microsoft legacy"
	case uuid.Reserved:
		return "NCS legacy"
	case uuid.Future:
		return "reserved (future)"
	default:
		return "invalid"
	}
}

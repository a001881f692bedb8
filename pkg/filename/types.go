// ABOUTME: Filename component model, rendering and folder hints
// ABOUTME: Twelve underscore-joined fields plus the .pdf extension

package filename

import (
	"errors"
	"fmt"
)

// MaxLength bounds every generated filename including the extension.
const MaxLength = 100

// Truncation floors. The cascade never shortens a field below these.
const (
	MinIdentifier = 5
	MinDocNum     = 3
)

// ErrTooLong is returned when the truncation cascade cannot bring a
// filename within MaxLength.
var ErrTooLong = errors.New("filename exceeds maximum length after truncation")

// Components holds the twelve fields of a filename. Every field is
// restricted to [A-Za-z0-9] after normalization.
type Components struct {
	GlobalID    string `json:"global_id"`
	Country     string `json:"country"`
	DocType     string `json:"doc_type"`
	Subtype     string `json:"subtype"`
	Year        int    `json:"year"`
	DocNum      string `json:"doc_num"`
	Identifier  string `json:"identifier"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	Version     int    `json:"version"`
	Language    string `json:"language"`
	ContentHash string `json:"content_hash"`
}

// String renders the filename:
// GLOBALID_CC_TYPE_SUBTYPE_YEAR_DOCNUM_IDENTIFIER_SUBJ_STATUS_VER_LANG_HASH16.pdf
func (c *Components) String() string {
	return fmt.Sprintf("%s_%s_%s_%s_%04d_%s_%s_%s_%s_V%02d_%s_%s.pdf",
		c.GlobalID, c.Country, c.DocType, c.Subtype, c.Year,
		c.DocNum, c.Identifier, c.Subject, c.Status,
		c.Version, c.Language, c.ContentHash)
}

// FolderHint suggests a storage layout path of country, category and a
// 50-year band, e.g. "BD/ACT/1851-1900". Purely advisory.
func FolderHint(c *Components) string {
	start := (c.Year-1)/50*50 + 1
	return fmt.Sprintf("%s/%s/%d-%d", c.Country, c.DocType, start, start+49)
}

package preset

import (
	"regexp"
	"strings"
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/engine"
)

// IDCardRecord covers Philippine IDs (UMID, SSS, TIN, PhilHealth, Pag-IBIG,
// Postal, Voter's, National ID), driver's licenses and passports — anything
// whose text OCRs into the usual label/value layout.
type IDCardRecord struct {
	Category    constants.Category `json:"category"`
	FullName    *string            `json:"full_name,omitempty"`
	IDNumber    *string            `json:"id_number,omitempty"`
	BirthDate   *time.Time         `json:"birth_date,omitempty"`
	Gender      *string            `json:"gender,omitempty"`
	Nationality *string            `json:"nationality,omitempty"`
	Address     *string            `json:"address,omitempty"`
}

func (r IDCardRecord) Tag() constants.Category { return r.Category }

var (
	idDates = engine.NewDateNormalizer(nil)

	idNumber = regexp.MustCompile(`(?i)(?:ID(?:\s*Number)?|SSS|TIN|PhilHealth|License|Passport|UMID)\s*#?:?\s*([\w\-]+)`)

	// Primary: keyword-anchored name. Secondary: a bare pair of capitalized
	// words, the way many cards print "DELA CRUZ, JUAN".
	idNameAnchored = regexp.MustCompile(`(?:Name|Full Name)[:\-]?\s*([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	idNameBareCaps = regexp.MustCompile(`([A-Z]{2,},?\s+[A-Z]{2,}[^\n]*)`)

	idBirthRaw    = regexp.MustCompile(`(?i)(?:Born|Birth\s*Date|Bday|DOB)\s*:?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4}|\d{2,4}[-/]\d{1,2}[-/]\d{1,4})`)
	idGender      = regexp.MustCompile(`(?i)(?:Sex|Gender)[:\-]?\s*(Male|Female|M|F)\b`)
	idNationality = regexp.MustCompile(`(?i)(?:Nationality|Citizenship)[:\-]?\s*([A-Za-z]+)`)
	idAddress     = regexp.MustCompile(`(?i)(?:Address|Residence|Location)[:\-]?\s*(.+)`)
)

// ParseIDCard extracts the identity-card field set from text.
func ParseIDCard(text string) Record {
	rec := IDCardRecord{Category: constants.IDCard}

	if m := idNumber.FindStringSubmatch(text); m != nil {
		id := strings.TrimSpace(m[1])
		rec.IDNumber = &id
	}
	if m := idNameAnchored.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		rec.FullName = &name
	} else if m := idNameBareCaps.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		rec.FullName = &name
	}
	if m := idBirthRaw.FindStringSubmatch(text); m != nil {
		if t, ok := idDates.ParseLoose(m[1]); ok {
			rec.BirthDate = &t
		}
	}
	if m := idGender.FindStringSubmatch(text); m != nil {
		gender := strings.TrimSpace(m[1])
		rec.Gender = &gender
	}
	if m := idNationality.FindStringSubmatch(text); m != nil {
		nat := strings.TrimSpace(m[1])
		rec.Nationality = &nat
	}
	if m := idAddress.FindStringSubmatch(text); m != nil {
		addr := strings.TrimSpace(m[1])
		if addr != "" {
			rec.Address = &addr
		}
	}
	return rec
}

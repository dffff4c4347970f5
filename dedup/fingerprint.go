package dedup

import (
	"strconv"

	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/extract"
)

// Fingerprint strategy names. A fingerprint is "<strategy>:<normalized value>";
// records sharing any fingerprint are considered the same entity.
const (
	strategyCompanyContact = "company-contact"
	strategyCompanyEmail   = "company-email"
	strategyCompanyPhone   = "company-phone"
	strategyEmail          = "email"
	strategyPhone          = "phone"
	strategyContactEmail   = "contact-email"
)

// identity holds the normalized attributes a record's fingerprints are
// derived from.
type identity struct {
	company string
	contact string
	email   string
	phone   string
}

func identityOf(record *core.EmbeddedRecord) identity {
	id := identity{
		company: NormalizeCompany(extract.FirstField(record, extract.CompanyAliases)),
		contact: NormalizeContact(extract.FirstField(record, extract.ContactAliases)),
		phone:   NormalizePhone(extract.FirstField(record, extract.PhoneAliases)),
	}
	for _, email := range extract.AllFields(record, extract.EmailAliases) {
		if extract.IsValidEmail(email) {
			id.email = NormalizeEmail(email)
			break
		}
	}
	return id
}

// Fingerprints derives up to six deterministic identity fingerprints from a
// record's normalized company, contact, email and phone:
//
//	company+contact, company+email, company+phone (>=8 digits),
//	email alone, phone alone (>=10 digits), contact+email
//
// Weak keys are omitted rather than emitted empty: a record with no usable
// attributes gets no fingerprints and is never merged into an arbitrary
// bucket.
func Fingerprints(record *core.EmbeddedRecord) []string {
	id := identityOf(record)
	fingerprints := make([]string, 0, 6)

	if id.company != "" && id.contact != "" {
		fingerprints = append(fingerprints, strategyCompanyContact+":"+id.company+"|"+id.contact)
	}
	if id.company != "" && id.email != "" {
		fingerprints = append(fingerprints, strategyCompanyEmail+":"+id.company+"|"+id.email)
	}
	if id.company != "" && len(id.phone) >= 8 {
		fingerprints = append(fingerprints, strategyCompanyPhone+":"+id.company+"|"+id.phone)
	}
	if id.email != "" {
		fingerprints = append(fingerprints, strategyEmail+":"+id.email)
	}
	if len(id.phone) >= 10 {
		fingerprints = append(fingerprints, strategyPhone+":"+id.phone)
	}
	if id.contact != "" && id.email != "" {
		fingerprints = append(fingerprints, strategyContactEmail+":"+id.contact+"|"+id.email)
	}

	return fingerprints
}

// GroupKey returns the identity used by the company-name backstop pass and
// by post-scoring resolution: the normalized company, or a contact /
// email / phone composite when the company is unknown. Records with no
// usable identity at all get a unique key from their record ID so they are
// never merged together.
func GroupKey(record *core.EmbeddedRecord) string {
	id := identityOf(record)
	if id.company != "" {
		return "company:" + id.company
	}
	if id.email != "" || len(id.phone) >= 8 || id.contact != "" {
		return "composite:" + id.email + "|" + id.phone + "|" + id.contact
	}
	return "record:" + record.SourceDocumentId + "/" + strconv.FormatUint(uint64(record.Id), 10)
}

package repo

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Solicitation struct {
	SolNumber string `db:"sol_number"`
	NSN       string `db:"nsn"`
	PRN       string `db:"prn"`

	// ISO date, or the raw source token when the feed carried a
	// malformed date. Stored as text for that reason.
	ReturnBy string `db:"return_by"`

	Quantity  int32  `db:"quantity"`
	UnitCode  string `db:"unit_code"`
	UnitName  string `db:"unit_name"`
	ItemLabel string `db:"item_label"`

	Descr    pgtype.Text `db:"descr"`
	SuppCode pgtype.Text `db:"supp_code"`

	// xxhash of the raw index record, for change detection.
	RawHash uint64 `db:"raw_hash"`
}

func (self *Solicitation) WithDescr(s string) *Solicitation {
	self.Descr = pgtype.Text{String: s, Valid: true}
	return self
}

func (self *Solicitation) WithSuppCode(s string) *Solicitation {
	self.SuppCode = pgtype.Text{String: s, Valid: true}
	return self
}

func (self *Solicitation) NamedArgs() pgx.NamedArgs {
	return pgx.NamedArgs{
		"sol_number": self.SolNumber,
		"nsn":        self.NSN,
		"prn":        self.PRN,

		"return_by":  self.ReturnBy,
		"quantity":   self.Quantity,
		"unit_code":  self.UnitCode,
		"unit_name":  self.UnitName,
		"item_label": self.ItemLabel,
		"descr":      self.Descr,
		"supp_code":  self.SuppCode,
		"raw_hash":   self.RawHash,
	}
}

package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var solicitationCols = [...]string{
	"sol_number", "nsn", "prn", "return_by", "quantity", "unit_code",
	"unit_name", "item_label", "descr", "supp_code", "raw_hash",
}

func New(db Postgreser) *Repo {
	return &Repo{db: db}
}

type Repo struct {
	db Postgreser
}

type Postgreser interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string,
		rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UpsertSolicitation inserts one solicitation or refreshes the stored
// row when the raw index record changed since the last run. Returns
// whether a row was written.
func (self *Repo) UpsertSolicitation(ctx context.Context, sol Solicitation,
) (bool, error) {
	cmdTag, err := self.db.Exec(ctx, `
INSERT INTO solicitations (sol_number,  nsn,  prn,  return_by,  quantity,
                           unit_code,  unit_name,  item_label,  descr,
                           supp_code,  raw_hash)
  VALUES                  (@sol_number, @nsn, @prn, @return_by, @quantity,
                           @unit_code, @unit_name, @item_label, @descr,
                           @supp_code, @raw_hash)
  ON CONFLICT (sol_number) DO UPDATE SET
    nsn = EXCLUDED.nsn, prn = EXCLUDED.prn, return_by = EXCLUDED.return_by,
    quantity = EXCLUDED.quantity, unit_code = EXCLUDED.unit_code,
    unit_name = EXCLUDED.unit_name, item_label = EXCLUDED.item_label,
    descr = EXCLUDED.descr, supp_code = EXCLUDED.supp_code,
    raw_hash = EXCLUDED.raw_hash, updated_at = now()
  WHERE solicitations.raw_hash IS DISTINCT FROM EXCLUDED.raw_hash`,
		sol.NamedArgs())
	if err != nil {
		return false, fmt.Errorf("upsert solicitation %q: %w", sol.SolNumber, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// CopySolicitations bulk-loads solicitations via COPY. Meant for the
// first load into an empty table: COPY has no conflict handling.
func (self *Repo) CopySolicitations(ctx context.Context, length int,
	next func(i int) (Solicitation, error),
) error {
	n, err := self.db.CopyFrom(ctx, pgx.Identifier{"solicitations"},
		solicitationCols[:],
		pgx.CopyFromSlice(length, func(i int) ([]any, error) {
			sol, err := next(i)
			if err != nil {
				return nil, err
			}
			values := []any{
				sol.SolNumber, sol.NSN, sol.PRN, sol.ReturnBy, sol.Quantity,
				sol.UnitCode, sol.UnitName, sol.ItemLabel, sol.Descr,
				sol.SuppCode, sol.RawHash,
			}
			return values, nil
		}))
	if err != nil {
		return fmt.Errorf("failed copy %v solicitations: %w", length, err)
	} else if n != int64(length) {
		return fmt.Errorf("copied %v solicitations instead of %v", n, length)
	}
	return nil
}

// RawHashes returns the hash of the raw index record for every stored
// solicitation, so an upload pass can skip unchanged records without
// touching the table.
func (self *Repo) RawHashes(ctx context.Context) (map[string]uint64, error) {
	rows, err := self.db.Query(ctx,
		`SELECT sol_number, raw_hash FROM solicitations`)
	if err != nil {
		return nil, fmt.Errorf("repo.RawHashes: %w", err)
	}

	type solHash struct {
		SolNumber string `db:"sol_number"`
		RawHash   uint64 `db:"raw_hash"`
	}

	solHashes, err := pgx.CollectRows(rows, pgx.RowToStructByName[solHash])
	if err != nil {
		return nil, fmt.Errorf("repo.RawHashes: %w", err)
	}

	hashes := make(map[string]uint64, len(solHashes))
	for _, item := range solHashes {
		hashes[item.SolNumber] = item.RawHash
	}
	return hashes, nil
}

// OpenItem is a stored solicitation still waiting for an AMSC.
type OpenItem struct {
	SolNumber string `db:"sol_number"`
	NSN       string `db:"nsn"`
}

// OpenNSNs lists solicitations without an AMSC that are not known to
// be closed. Feed for the detail-page pass.
func (self *Repo) OpenNSNs(ctx context.Context) ([]OpenItem, error) {
	rows, err := self.db.Query(ctx, `
SELECT sol_number, nsn FROM solicitations
  WHERE amsc IS NULL AND NOT closed`)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenNSNs: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[OpenItem])
	if err != nil {
		return nil, fmt.Errorf("repo.OpenNSNs: %w", err)
	}
	return items, nil
}

func (self *Repo) SetAMSC(ctx context.Context, solNumber, code string) error {
	_, err := self.db.Exec(ctx, `
UPDATE solicitations SET amsc = $2, updated_at = now()
  WHERE sol_number = $1`, solNumber, code)
	if err != nil {
		return fmt.Errorf("set AMSC %q for %q: %w", code, solNumber, err)
	}
	return nil
}

func (self *Repo) CloseSolicitation(ctx context.Context, solNumber string,
) error {
	_, err := self.db.Exec(ctx, `
UPDATE solicitations SET closed = TRUE, updated_at = now()
  WHERE sol_number = $1`, solNumber)
	if err != nil {
		return fmt.Errorf("close solicitation %q: %w", solNumber, err)
	}
	return nil
}

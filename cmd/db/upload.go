package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/quotefeed/dibbs/client"
	"github.com/quotefeed/dibbs/client/index"
	"github.com/quotefeed/dibbs/internal/repo"
)

func NewUpload(dibbs *client.Client, repo Repo) *Upload {
	return &Upload{
		dibbs:  dibbs,
		repo:   repo,
		logger: slog.Default(),

		procs: 1,
	}
}

type Repo interface {
	UpsertSolicitation(ctx context.Context, sol repo.Solicitation) (bool, error)
	CopySolicitations(ctx context.Context, length int,
		next func(i int) (repo.Solicitation, error)) error
	RawHashes(ctx context.Context) (map[string]uint64, error)
	OpenNSNs(ctx context.Context) ([]repo.OpenItem, error)
	SetAMSC(ctx context.Context, solNumber, code string) error
	CloseSolicitation(ctx context.Context, solNumber string) error
}

type Upload struct {
	dibbs  *client.Client
	repo   Repo
	logger *slog.Logger

	procs int
}

func (self *Upload) WithLogger(l *slog.Logger) *Upload {
	self.logger = l
	return self
}

func (self *Upload) WithProcsLimit(n int) *Upload {
	self.procs = n
	return self
}

func (self *Upload) log(ctx context.Context) *slog.Logger {
	return ContextLogger(ctx, self.logger)
}

// Upload fetches the RFQ index file for every given day and stores its
// solicitations. Records unchanged since the last run (same raw-line
// hash) are skipped without touching the database. An empty table is
// bulk-loaded via COPY instead of per-record upserts.
func (self *Upload) Upload(days []time.Time) error {
	ctx := context.Background()

	hashes, err := self.repo.RawHashes(ctx)
	if err != nil {
		return fmt.Errorf("preload raw hashes: %w", err)
	}
	freshTable := len(hashes) == 0

	var fresh []repo.Solicitation
	for _, day := range days {
		records, err := self.indexRecords(ctx, day)
		if err != nil {
			return err
		}
		for i := range records {
			sol := solFromRecord(&records[i])
			if hash, ok := hashes[sol.SolNumber]; ok && hash == sol.RawHash {
				continue
			}
			hashes[sol.SolNumber] = sol.RawHash
			fresh = append(fresh, sol)
		}
	}

	if len(fresh) == 0 {
		self.log(ctx).Info("nothing to upload")
		return nil
	}

	if freshTable {
		return self.copySolicitations(ctx, fresh)
	}
	return self.upsertSolicitations(ctx, fresh)
}

// indexRecords fetches and parses one daily index file. A 404 is not
// an error: the portal publishes no file on weekends and holidays.
func (self *Upload) indexRecords(ctx context.Context, day time.Time,
) ([]index.Record, error) {
	l := self.log(ctx).With(slog.String("day", day.Format(time.DateOnly)))
	l.Info("fetch index file", slog.String("name", client.IndexFileName(day)))

	text, err := self.dibbs.IndexFile(ctx, day)
	if err != nil {
		var status *client.UnexpectedStatusError
		if errors.As(err, &status) && status.StatusCode() == http.StatusNotFound {
			l.Info("no index file published", slog.String("error", err.Error()))
			return nil, nil
		}
		return nil, fmt.Errorf("fetch index file: %w", err)
	}

	res, err := index.ParseFile(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse index file: %w", err)
	}

	for _, warning := range res.Warnings {
		l.Warn("index anomaly", slog.String("warning", warning))
	}
	for _, skip := range res.Skips {
		l.Warn("skipped record", slog.String("reason", skip.Reason),
			slog.String("line", skip.Line))
	}
	l.Info("parsed index file", slog.Int("records", len(res.Records)),
		slog.Int("skipped", len(res.Skips)))
	return res.Records, nil
}

func (self *Upload) copySolicitations(ctx context.Context,
	fresh []repo.Solicitation,
) error {
	self.log(ctx).Info("bulk load into empty table",
		slog.Int("length", len(fresh)))
	err := self.repo.CopySolicitations(ctx, len(fresh),
		func(i int) (repo.Solicitation, error) { return fresh[i], nil })
	if err != nil {
		return fmt.Errorf("bulk load %v solicitations: %w", len(fresh), err)
	}
	return nil
}

func (self *Upload) upsertSolicitations(ctx context.Context,
	fresh []repo.Solicitation,
) error {
	var written int
	for i := range fresh {
		changed, err := self.repo.UpsertSolicitation(ctx, fresh[i])
		if err != nil {
			return fmt.Errorf("upload solicitations: %w", err)
		}
		if changed {
			written++
		}
	}
	self.log(ctx).Info("uploaded solicitations",
		slog.Int("written", written), slog.Int("unchanged", len(fresh)-written))
	return nil
}

func solFromRecord(rec *index.Record) repo.Solicitation {
	sol := repo.Solicitation{
		SolNumber: rec.SolicitationNumber,
		NSN:       rec.StockNumber,
		PRN:       rec.PurchaseRequestNumber,
		ReturnBy:  rec.ReturnByDate,
		Quantity:  int32(rec.Quantity),
		UnitCode:  rec.UnitCode,
		UnitName:  rec.UnitDescription,
		ItemLabel: rec.ItemLabel,
		RawHash:   xxhash.Sum64String(rec.RawLine),
	}
	if rec.AdditionalDescription != "" {
		sol.WithDescr(rec.AdditionalDescription)
	}
	if rec.SupplementalCode != "" {
		sol.WithSuppCode(rec.SupplementalCode)
	}
	return sol
}

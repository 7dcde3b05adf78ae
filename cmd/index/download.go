package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/quotefeed/dibbs/client"
	"github.com/quotefeed/dibbs/client/index"
)

func NewDownload(client *client.Client, st Storage) *Download {
	return &Download{
		client:  client,
		storage: st,
	}
}

type Download struct {
	client  *client.Client
	storage Storage
}

type Storage interface {
	Save(path, fname string, r io.Reader) error
}

// Download fetches the index file of every day in [from, to] and
// stores it unchanged. Days without a published file (weekends,
// holidays) are skipped.
func (self *Download) Download(from, to time.Time) error {
	ctx := context.Background()
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := self.downloadDay(ctx, day); err != nil {
			return fmt.Errorf("download of %v: %w",
				day.Format(time.DateOnly), err)
		}
	}
	return nil
}

func (self *Download) downloadDay(ctx context.Context, day time.Time) error {
	fname := client.IndexFileName(day)
	text, err := self.client.IndexFile(ctx, day)
	if err != nil {
		var statusErr *client.UnexpectedStatusError
		if errors.As(err, &statusErr) &&
			statusErr.StatusCode() == http.StatusNotFound {
			log.Printf("skip %v: %v", fname, statusErr)
			return nil
		}
		return err //nolint:wrapcheck // wrapped by caller with the day
	}

	log.Printf("download %v: %v bytes", fname, len(text))
	if err := self.storage.Save("", fname, strings.NewReader(text)); err != nil {
		return fmt.Errorf("save %v: %w", fname, err)
	}
	return nil
}

func parseIndexFile(fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("open %q: %w", fname, err)
	}
	defer f.Close()

	res, err := index.ParseFile(f)
	if err != nil {
		return fmt.Errorf("parse %q: %w", fname, err)
	}

	for _, warning := range res.Warnings {
		log.Printf("%v: warning: %v", fname, warning)
	}
	for _, skip := range res.Skips {
		log.Printf("%v: skip: %v: %q", fname, skip.Reason, skip.Line)
	}
	log.Printf("%v: %v records, %v skipped", fname, len(res.Records),
		len(res.Skips))
	return nil
}

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quotefeed/dibbs/client"
	"github.com/quotefeed/dibbs/client/detail"
	"github.com/quotefeed/dibbs/internal/repo"
)

// UpdateAMSC walks every stored solicitation without an AMSC, fetches
// its detail page and writes back the extracted code. Pages without a
// code are classified: confirmed closed solicitations are marked
// closed, undetermined ones stay in the queue for the next run.
func (self *Upload) UpdateAMSC() error {
	ctx := context.Background()

	items, err := self.repo.OpenNSNs(ctx)
	if err != nil {
		return fmt.Errorf("load open solicitations: %w", err)
	} else if len(items) == 0 {
		self.log(ctx).Info("nothing to update")
		return nil
	}
	self.log(ctx).Info("update AMSC codes", slog.Int("length", len(items)))

	return self.updateWithProgress(ctx, items)
}

func (self *Upload) updateWithProgress(ctx context.Context,
	items []repo.OpenItem,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var progress atomic.Uint32
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		self.logProgress(ctx, &progress, len(items))
	}()

	err := self.updateOpenItems(ctx, items, &progress)
	cancel()
	wg.Wait()
	return err
}

func (self *Upload) logProgress(ctx context.Context,
	progress *atomic.Uint32, length int,
) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			self.log(ctx).Info("looking for AMSC codes",
				slog.String("progress",
					fmt.Sprintf("%v/%v", progress.Load(), length)))
		}
	}
}

func (self *Upload) updateOpenItems(ctx context.Context,
	items []repo.OpenItem, progress *atomic.Uint32,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(self.procs)

	for i := range items {
		if ctx.Err() != nil {
			break
		}
		item := items[i]
		cnt := progress.Add(1)
		l := self.log(ctx).With(
			slog.String("progress", fmt.Sprintf("%v/%v", cnt, len(items))),
			slog.String("solicitation", item.SolNumber),
			slog.String("nsn", item.NSN))
		g.Go(func() error {
			return self.updateItemAMSC(ContextWithLogger(ctx, l), item)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("update AMSC codes: %w", err)
	}
	return nil
}

func (self *Upload) updateItemAMSC(ctx context.Context, item repo.OpenItem,
) error {
	page, err := self.dibbs.SolicitationPage(ctx, item.NSN)
	if err != nil {
		var status *client.UnexpectedStatusError
		if errors.As(err, &status) && status.StatusCode() == http.StatusNotFound {
			self.log(ctx).Info("skip missing detail page",
				slog.String("error", err.Error()))
			return nil
		}
		return fmt.Errorf("detail page for NSN %v: %w", item.NSN, err)
	}

	if code, ok := detail.ExtractAMSC(page); ok {
		self.log(ctx).Info("got AMSC", slog.String("amsc", code))
		if err := self.repo.SetAMSC(ctx, item.SolNumber, code); err != nil {
			return fmt.Errorf("updateItemAMSC: %w", err)
		}
		return nil
	}

	if detail.Status(page, item.NSN) == detail.StatusClosed {
		self.log(ctx).Info("solicitation closed")
		if err := self.repo.CloseSolicitation(ctx, item.SolNumber); err != nil {
			return fmt.Errorf("updateItemAMSC: %w", err)
		}
		return nil
	}

	self.log(ctx).Info("AMSC not found, status undetermined")
	return nil
}

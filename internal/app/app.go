package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/staybook/staybook/internal/booking"
	"github.com/staybook/staybook/internal/catalog"
	"github.com/staybook/staybook/internal/config"
	"github.com/staybook/staybook/internal/gateway"
	"github.com/staybook/staybook/internal/idgen/uuidv7"
	"github.com/staybook/staybook/internal/logger"
	"github.com/staybook/staybook/internal/profile"
	"github.com/staybook/staybook/internal/storage/kv"
	"github.com/staybook/staybook/internal/storage/kv/filekv"
	"github.com/staybook/staybook/internal/storage/kv/gormkv"
	"github.com/staybook/staybook/internal/storage/kv/memory"
	"github.com/staybook/staybook/internal/storage/kv/rediskv"
)

const (
	demoCheckInOffsetDays  = 30
	demoCheckOutOffsetDays = 33
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, closeStore, err := openKV(ctx, l, conf)
	if err != nil {
		return fmt.Errorf("open %v storage: %w", conf.Backend, err)
	}

	defer func() {
		if err := closeStore(); err != nil {
			l.LogErrorf("Failed to close storage: %v", err.Error())
		}
	}()

	bookings := gateway.New(gateway.Config{
		L:   l,
		KV:  store,
		Key: conf.StoreKey,
	})

	bookManager := booking.New(l, bookings, uuidv7.New(), nil)

	l.LogInfo("Application is running with %v storage", conf.Backend)

	if err := runDemoFlow(ctx, l, conf, bookManager); err != nil {
		return err
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}

// runDemoFlow walks one booking through the whole wizard: dates, payment,
// guest info, review, finalize, then the history view.
func runDemoFlow(ctx context.Context, l *logger.Logger, conf *config.Config, bookManager *booking.Manager) error {
	hotels := catalog.Sample()

	hotel, ok := hotels.ByID("1")
	if !ok {
		return fmt.Errorf("sample hotel missing from catalog: %w", booking.ErrBookingNotFound)
	}

	ctx = booking.NewContextWithFlowID(ctx, uuid.NewString())

	draft := booking.NewDraft(hotel, profile.FromConfig(conf.Profile).Defaults(), nil)

	today := time.Now().UTC()

	if err := draft.SelectCheckIn(today.AddDate(0, 0, demoCheckInOffsetDays)); err != nil {
		return fmt.Errorf("select check-in: %w", err)
	}

	if err := draft.SelectCheckOut(today.AddDate(0, 0, demoCheckOutOffsetDays)); err != nil {
		return fmt.Errorf("select check-out: %w", err)
	}

	draft.IncrementGuests()

	if !draft.ReadyForReview() {
		name, email, phone := "Avery Stone", "avery.stone@example.com", "+33 1 23 45 67 89"
		draft.SetGuestInfo(booking.GuestInfoPatch{Name: &name, Email: &email, Phone: &phone})
	}

	breakdown := draft.Breakdown()
	l.LogInfo(
		"type: draft_priced, hotel: %v, nights: %v, base: %.2f, tax: %.2f, fee: %.2f, total: %.2f",
		hotel.Name,
		breakdown.Nights,
		booking.RoundCurrency(breakdown.BasePrice),
		booking.RoundCurrency(breakdown.Tax),
		booking.RoundCurrency(breakdown.ServiceFee),
		booking.RoundCurrency(breakdown.Total),
	)

	record, err := bookManager.Finalize(ctx, draft)
	if err != nil {
		return fmt.Errorf("finalize booking: %w", err)
	}

	receipt := record.Receipt(time.Now().UTC())
	l.LogInfo(
		"type: receipt, booking: %v, hotel: %v, total: %.2f",
		receipt.BookingID,
		receipt.Hotel,
		booking.RoundCurrency(receipt.Breakdown.Total),
	)

	moved, err := bookManager.CompleteElapsed(ctx)
	if err != nil {
		return fmt.Errorf("complete elapsed bookings: %w", err)
	}

	if moved > 0 {
		l.LogInfo("Moved %v past stays to completed", moved)
	}

	upcoming, err := bookManager.ListByStatus(ctx, booking.StatusUpcoming)
	if err != nil {
		return fmt.Errorf("list upcoming bookings: %w", err)
	}

	l.LogInfo("Upcoming bookings: %v", len(upcoming))

	return nil
}

func openKV(ctx context.Context, l *logger.Logger, conf *config.Config) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch conf.Backend {
	case config.BackendMemory:
		return memory.New(memory.Config{L: l}), noop, nil
	case config.BackendFile:
		db, err := filekv.New(filekv.Config{L: l, Dir: conf.DataDir})
		if err != nil {
			return nil, nil, err
		}

		return db, noop, nil
	case config.BackendRedis:
		db, err := rediskv.New(ctx, rediskv.Config{ //nolint:exhaustruct
			L:        l,
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}

		return db, db.Close, nil
	case config.BackendSQLite:
		db, err := gormkv.New(gormkv.Config{L: l, Path: conf.SQLitePath})
		if err != nil {
			return nil, nil, err
		}

		return db, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", conf.Backend)
}

package logic

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedTip(t *testing.T, l *LedgerLogic, sender, creator, amount, hash string, ts time.Time) {
	t.Helper()
	if _, err := l.RecordTip(context.Background(), RecordTipInput{
		SenderID:        sender,
		CreatorID:       creator,
		Amount:          amt(amount),
		Timestamp:       ts,
		TransactionHash: hash,
	}); err != nil {
		t.Fatalf("seed tip %s: %v", hash, err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	store := newMemoryLedger()
	a := NewAnalyticsLogic(store, store)

	summary, err := a.Summarize("nobody", "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !summary.TotalTips.IsZero() || summary.UniqueTippers != 0 ||
		!summary.AverageTip.IsZero() || summary.TipCount != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarizeDividesByUniqueTippers(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	now := time.Now().UTC()
	seedTip(t, ledger, "A", "C", "10", "0x1", now.Add(-3*time.Hour))
	seedTip(t, ledger, "A", "C", "20", "0x2", now.Add(-2*time.Hour))
	seedTip(t, ledger, "B", "C", "5", "0x3", now.Add(-1*time.Hour))

	summary, err := a.Summarize("C", "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !summary.TotalTips.Equal(amt("35")) {
		t.Errorf("total: got %s, want 35", summary.TotalTips)
	}
	if summary.UniqueTippers != 2 {
		t.Errorf("unique tippers: got %d, want 2", summary.UniqueTippers)
	}
	if summary.TipCount != 3 {
		t.Errorf("tip count: got %d, want 3", summary.TipCount)
	}
	// 35 / 2 unique supporters, not 35 / 3 tips.
	if !summary.AverageTip.Equal(amt("17.50")) {
		t.Errorf("average: got %s, want 17.50", summary.AverageTip)
	}
}

func TestSummarizeTimeWindows(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	seedTip(t, ledger, "A", "C", "10", "0xold", now.AddDate(0, 0, -10))
	seedTip(t, ledger, "B", "C", "7", "0xfresh", now.AddDate(0, 0, -2))
	seedTip(t, ledger, "A", "C", "40", "0xancient", now.AddDate(0, 0, -45))

	week, err := a.Summarize("C", WindowWeek)
	if err != nil {
		t.Fatalf("Summarize week: %v", err)
	}
	if !week.TotalTips.Equal(amt("7")) || week.TipCount != 1 || week.UniqueTippers != 1 {
		t.Errorf("week: got %+v, want only the 2-day-old tip", week)
	}

	month, err := a.Summarize("C", WindowMonth)
	if err != nil {
		t.Fatalf("Summarize month: %v", err)
	}
	if !month.TotalTips.Equal(amt("17")) || month.TipCount != 2 {
		t.Errorf("month: got %+v, want the 2- and 10-day-old tips", month)
	}

	all, err := a.Summarize("C", WindowAll)
	if err != nil {
		t.Fatalf("Summarize all: %v", err)
	}
	if !all.TotalTips.Equal(amt("57")) || all.TipCount != 3 {
		t.Errorf("all: got %+v, want every tip", all)
	}

	if _, err := a.Summarize("C", "fortnight"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown window: got %v, want ErrInvalidInput", err)
	}
}

func TestRecentTips(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	seedTip(t, ledger, "A", "C", "1", "0x1", base.Add(1*time.Hour))
	seedTip(t, ledger, "B", "C", "2", "0x2", base.Add(3*time.Hour))
	seedTip(t, ledger, "A", "C", "3", "0x3", base.Add(2*time.Hour))

	tips, err := a.RecentTips("C", 2)
	if err != nil {
		t.Fatalf("RecentTips: %v", err)
	}
	if len(tips) != 2 {
		t.Fatalf("got %d tips, want 2", len(tips))
	}
	if !tips[0].Amount.Equal(amt("2")) || !tips[1].Amount.Equal(amt("3")) {
		t.Errorf("expected newest first: got %s then %s", tips[0].Amount, tips[1].Amount)
	}

	all, err := a.RecentTips("C", 50)
	if err != nil {
		t.Fatalf("RecentTips: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("limit beyond ledger size: got %d, want 3", len(all))
	}
}

func TestTipListingStableOnEqualTimestamps(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	shared := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	newer := shared.Add(1 * time.Hour)

	// Three tips share one client-supplied timestamp; among them the
	// listing must keep insertion order.
	seedTip(t, ledger, "A", "C", "1", "0xfirst", shared)
	seedTip(t, ledger, "B", "C", "2", "0xsecond", shared)
	seedTip(t, ledger, "A", "C", "3", "0xthird", shared)
	seedTip(t, ledger, "B", "C", "4", "0xnewer", newer)

	tips, err := ledger.GetTipsByCreator("C")
	if err != nil {
		t.Fatalf("GetTipsByCreator: %v", err)
	}
	if len(tips) != 4 {
		t.Fatalf("got %d tips, want 4", len(tips))
	}
	wantHashes := []string{"0xnewer", "0xfirst", "0xsecond", "0xthird"}
	for i, want := range wantHashes {
		if tips[i].TransactionHash != want {
			t.Fatalf("position %d: got %s, want %s", i, tips[i].TransactionHash, want)
		}
	}

	recent, err := a.RecentTips("C", 3)
	if err != nil {
		t.Fatalf("RecentTips: %v", err)
	}
	wantRecent := []string{"0xnewer", "0xfirst", "0xsecond"}
	for i, want := range wantRecent {
		if recent[i].TransactionHash != want {
			t.Fatalf("recent position %d: got %s, want %s", i, recent[i].TransactionHash, want)
		}
	}
}

func TestSupporterAggregate(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	ts := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	seedTip(t, ledger, "A", "C", "10", "0x1", ts)
	seedTip(t, ledger, "A", "C", "5", "0x2", ts.Add(time.Hour))

	agg, err := a.SupporterAggregate("A", "C")
	if err != nil {
		t.Fatalf("SupporterAggregate: %v", err)
	}
	if !agg.TotalTipped.Equal(amt("15")) || agg.TipCount != 2 {
		t.Errorf("aggregate: got total=%s count=%d, want 15/2", agg.TotalTipped, agg.TipCount)
	}
	if !agg.LastTippedAt.Equal(ts.Add(time.Hour)) {
		t.Errorf("last tipped: got %s, want %s", agg.LastTippedAt, ts.Add(time.Hour))
	}

	// A pair with no tips is a normal outcome, not an error.
	empty, err := a.SupporterAggregate("nobody", "C")
	if err != nil {
		t.Fatalf("SupporterAggregate for unknown pair: %v", err)
	}
	if !empty.TotalTipped.IsZero() || empty.TipCount != 0 {
		t.Errorf("unknown pair: got total=%s count=%d, want zeros", empty.TotalTipped, empty.TipCount)
	}

	if _, err := a.SupporterAggregate("", "C"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty supporter id: got %v, want ErrInvalidInput", err)
	}
}

func TestTopSupportersTieBreak(t *testing.T) {
	store := newMemoryLedger()
	ledger := NewLedgerLogic(store, nil, nil, "USDC")
	a := NewAnalyticsLogic(store, store)

	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	// A and B tie on total; A's last tip is earlier so A ranks first.
	seedTip(t, ledger, "A", "C", "30", "0x1", base.Add(1*time.Hour))
	seedTip(t, ledger, "B", "C", "30", "0x2", base.Add(5*time.Hour))
	seedTip(t, ledger, "D", "C", "10", "0x3", base.Add(2*time.Hour))

	supporters, err := a.TopSupporters("C", 10)
	if err != nil {
		t.Fatalf("TopSupporters: %v", err)
	}
	if len(supporters) != 3 {
		t.Fatalf("got %d supporters, want 3", len(supporters))
	}
	gotOrder := []string{supporters[0].SupporterID, supporters[1].SupporterID, supporters[2].SupporterID}
	wantOrder := []string{"A", "B", "D"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order: got %v, want %v", gotOrder, wantOrder)
		}
	}

	top2, err := a.TopSupporters("C", 2)
	if err != nil {
		t.Fatalf("TopSupporters: %v", err)
	}
	if len(top2) != 2 {
		t.Errorf("limit: got %d, want 2", len(top2))
	}
}

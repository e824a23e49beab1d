package listing

import "testing"

func TestSnapshots_StoreAndLoad(t *testing.T) {
	s := NewSnapshots()
	fp := Fingerprint("orders", "", Params{Status: StatusAll, Sort: SortCreatedAtDesc})

	if _, ok := s.Load(fp); ok {
		t.Fatal("empty cache should miss")
	}

	seq := s.Begin()
	if !s.Store(fp, seq, []Row{{ID: "1"}}) {
		t.Fatal("first store must be accepted")
	}
	rows, ok := s.Load(fp)
	if !ok || len(rows) != 1 || rows[0].ID != "1" {
		t.Fatalf("load returned %+v ok=%v", rows, ok)
	}
}

func TestSnapshots_StaleWriteRejected(t *testing.T) {
	s := NewSnapshots()
	fp := Fingerprint("orders", "", Params{Status: StatusAll, Sort: SortCreatedAtDesc})

	older := s.Begin()
	newer := s.Begin()

	if !s.Store(fp, newer, []Row{{ID: "new"}}) {
		t.Fatal("newer derivation must land")
	}
	if s.Store(fp, older, []Row{{ID: "old"}}) {
		t.Fatal("superseded derivation must not overwrite a newer snapshot")
	}

	rows, _ := s.Load(fp)
	if rows[0].ID != "new" {
		t.Fatalf("newer snapshot lost: %+v", rows)
	}
}

func TestFingerprint_ExcludesPage(t *testing.T) {
	a := Fingerprint("orders", "shop-1", Params{Query: "q", Status: StatusAll, Sort: SortTotalAsc, Page: 1})
	b := Fingerprint("orders", "shop-1", Params{Query: "q", Status: StatusAll, Sort: SortTotalAsc, Page: 7})
	if a != b {
		t.Fatal("page must not participate in the fingerprint")
	}

	c := Fingerprint("orders", "shop-2", Params{Query: "q", Status: StatusAll, Sort: SortTotalAsc})
	if a == c {
		t.Fatal("scope must participate in the fingerprint")
	}
	d := Fingerprint("withdrawals", "shop-1", Params{Query: "q", Status: StatusAll, Sort: SortTotalAsc})
	if a == d {
		t.Fatal("collection must participate in the fingerprint")
	}
}

func TestSnapshots_InvalidateByCollection(t *testing.T) {
	s := NewSnapshots()
	orders := Fingerprint("orders", "", Params{Status: StatusAll, Sort: SortCreatedAtDesc})
	products := Fingerprint("products", "", Params{Status: StatusAll, Sort: SortCreatedAtDesc})

	s.Store(orders, s.Begin(), []Row{{ID: "o"}})
	s.Store(products, s.Begin(), []Row{{ID: "p"}})

	s.Invalidate("orders")

	if _, ok := s.Load(orders); ok {
		t.Fatal("orders snapshots should be gone")
	}
	if _, ok := s.Load(products); !ok {
		t.Fatal("products snapshots must survive an orders invalidation")
	}
}

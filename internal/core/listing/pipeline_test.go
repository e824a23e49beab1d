package listing

import (
	"reflect"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{ID: "ord-1", DisplayName: "Alice Smith", Contact: "alice@example.com", Status: "DELIVERED", CreatedAt: 100, Total: 50},
		{ID: "ord-2", DisplayName: "Bob Jones", Contact: "bob@example.com", Status: "PENDING", CreatedAt: 200, Total: 75},
		{ID: "ord-3", DisplayName: "Carol White", Contact: "carol@example.com", Status: "OTHER", CreatedAt: 300, Total: 20},
	}
}

func TestOrder_QueryAndStatusThenSort(t *testing.T) {
	rows := []Row{
		{ID: "1", DisplayName: "Alice", Status: "DELIVERED", CreatedAt: 1, Total: 10},
		{ID: "2", DisplayName: "Bob", Status: "DELIVERED", CreatedAt: 2, Total: 99},
	}
	// Query "a" matches Alice only; Bob would have won on total.
	got := Order(rows, "a", StatusAll, SortTotalDesc)
	if len(got) != 1 || got[0].DisplayName != "Alice" {
		t.Fatalf("expected [Alice], got %+v", got)
	}
}

func TestOrder_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	rows := sampleRows()
	if got := Order(rows, "ALICE", StatusAll, SortCreatedAtDesc); len(got) != 1 || got[0].ID != "ord-1" {
		t.Fatalf("case-insensitive name match failed: %+v", got)
	}
	if got := Order(rows, "bob@", StatusAll, SortCreatedAtDesc); len(got) != 1 || got[0].ID != "ord-2" {
		t.Fatalf("contact match failed: %+v", got)
	}
	if got := Order(rows, "ord-", StatusAll, SortCreatedAtDesc); len(got) != 3 {
		t.Fatalf("id match should hit all rows, got %d", len(got))
	}
}

func TestOrder_OtherBucketOnlyUnderAll(t *testing.T) {
	rows := sampleRows()
	if got := Order(rows, "", StatusAll, SortCreatedAtDesc); len(got) != 3 {
		t.Fatalf("ALL must pass every row, got %d", len(got))
	}
	if got := Order(rows, "", "DELIVERED", SortCreatedAtDesc); len(got) != 1 || got[0].ID != "ord-1" {
		t.Fatalf("named status must exclude OTHER rows, got %+v", got)
	}
	// OTHER is a degradation bucket, not a selectable status.
	if got := Order(rows, "", StatusOther, SortCreatedAtDesc); len(got) != 0 {
		t.Fatalf("an explicit OTHER filter must match nothing, got %+v", got)
	}
}

func TestOrder_SortStableOnTies(t *testing.T) {
	rows := []Row{
		{ID: "a", CreatedAt: 5, Total: 1, Status: "PENDING"},
		{ID: "b", CreatedAt: 5, Total: 1, Status: "PENDING"},
		{ID: "c", CreatedAt: 5, Total: 1, Status: "PENDING"},
	}
	for _, by := range []Sort{SortCreatedAtDesc, SortCreatedAtAsc, SortTotalDesc, SortTotalAsc} {
		got := Order(rows, "", StatusAll, by)
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Fatalf("sort %q broke tie order: %+v", by, got)
		}
	}
}

func TestOrder_Deterministic(t *testing.T) {
	rows := sampleRows()
	first := Order(rows, "", StatusAll, SortTotalAsc)
	second := Order(rows, "", StatusAll, SortTotalAsc)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated derivations over identical input must be identical")
	}
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	rows := make([]Row, 25)
	for i := range rows {
		rows[i] = Row{ID: string(rune('a' + i))}
	}

	page := Paginate(rows, 99)
	if page.Page != 3 {
		t.Fatalf("page 99 of 25 rows should clamp to 3, got %d", page.Page)
	}
	if page.TotalPages != 3 || page.Total != 25 {
		t.Fatalf("envelope wrong: %+v", page)
	}
	if len(page.Data) != 5 {
		t.Fatalf("last page should hold the remaining 5 rows, got %d", len(page.Data))
	}

	if p := Paginate(rows, 0); p.Page != 1 {
		t.Fatalf("page 0 should clamp to 1, got %d", p.Page)
	}
	if p := Paginate(rows, -7); p.Page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", p.Page)
	}
}

func TestPaginate_EmptyResult(t *testing.T) {
	page := Paginate(nil, 5)
	if page.Page != 1 || page.TotalPages != 1 || page.Total != 0 {
		t.Fatalf("empty set should yield page 1 of 1: %+v", page)
	}
	if len(page.Data) != 0 {
		t.Fatalf("expected no rows, got %d", len(page.Data))
	}
}

func TestDerive_FullPipeline(t *testing.T) {
	rows := sampleRows()
	page := Derive(rows, Params{Query: "", Status: StatusAll, Sort: SortCreatedAtDesc, Page: 1})
	if len(page.Data) != 3 || page.Data[0].ID != "ord-3" {
		t.Fatalf("default ordering should be newest first: %+v", page.Data)
	}
}

func TestParseSort(t *testing.T) {
	cases := map[string]Sort{
		"created_at_desc": SortCreatedAtDesc,
		"created_at_asc":  SortCreatedAtAsc,
		"TOTAL_DESC":      SortTotalDesc,
		" total_asc ":     SortTotalAsc,
		"":                SortCreatedAtDesc,
		"garbage":         SortCreatedAtDesc,
	}
	for raw, want := range cases {
		if got := ParseSort(raw); got != want {
			t.Errorf("ParseSort(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestJoinName(t *testing.T) {
	if got := JoinName("Alice", "Smith"); got != "Alice Smith" {
		t.Fatalf("got %q", got)
	}
	if got := JoinName("  Alice  ", "", "   "); got != "Alice" {
		t.Fatalf("empties should be skipped, got %q", got)
	}
	if got := JoinName("", ""); got != "" {
		t.Fatalf("all-empty should yield empty string, got %q", got)
	}
}

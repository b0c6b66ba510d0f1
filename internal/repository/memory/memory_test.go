package memory

import (
	"testing"

	"github.com/dev-isidore/hhplus-tdd/internal/models"
)

func TestUserPointsDefaultRecord(t *testing.T) {
	r := NewUserPointsRepo()
	up := r.SelectByID(9)
	if up.ID != 9 || up.Point != 0 {
		t.Fatalf("expected fresh zero record for id 9, got %+v", up)
	}
	if up.UpdateMillis == 0 {
		t.Fatal("default record must carry a timestamp")
	}
}

func TestUserPointsInsertOrUpdateOverwrites(t *testing.T) {
	r := NewUserPointsRepo()
	first := r.InsertOrUpdate(1, 100)
	if first.Point != 100 {
		t.Fatalf("expected 100, got %d", first.Point)
	}
	second := r.InsertOrUpdate(1, 40)
	if second.Point != 40 {
		t.Fatalf("expected overwrite to 40, got %d", second.Point)
	}
	if got := r.SelectByID(1); got != second {
		t.Fatalf("latest write must be authoritative, got %+v", got)
	}
}

func TestPointHistoriesAssignMonotonicIDs(t *testing.T) {
	r := NewPointHistoriesRepo()
	// Ids are global across users, starting at 1.
	a := r.Insert(1, 10, models.TxnCharge, 111)
	b := r.Insert(2, 20, models.TxnCharge, 222)
	c := r.Insert(1, 5, models.TxnUse, 333)
	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Fatalf("expected ids 1,2,3, got %d,%d,%d", a.ID, b.ID, c.ID)
	}

	hs := r.SelectAllByUserID(1)
	if len(hs) != 2 {
		t.Fatalf("expected 2 entries for user 1, got %d", len(hs))
	}
	if hs[0] != a || hs[1] != c {
		t.Fatalf("entries must come back in insertion order: %+v", hs)
	}
}

func TestPointHistoriesEmptyResult(t *testing.T) {
	r := NewPointHistoriesRepo()
	if hs := r.SelectAllByUserID(5); hs == nil || len(hs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", hs)
	}
}

func TestUsersSequentialIDs(t *testing.T) {
	r := NewUsersRepo()
	if _, ok := r.FindByID(0); ok {
		t.Fatal("fresh table must not know id 0")
	}
	a := r.Insert("alpha")
	b := r.Insert("beta")
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", a.ID, b.ID)
	}
	got, ok := r.FindByID(1)
	if !ok || got.Name != "beta" {
		t.Fatalf("expected to find beta at id 1, got %+v ok=%v", got, ok)
	}
}

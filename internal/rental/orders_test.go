package rental

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aaronlin79/game-rental-system/internal/sqlexec"
)

func newOrderRepo(tx *fakeTx) *Repo {
	return &Repo{
		Exec: sqlexec.New(&fakeDB{}, &bytes.Buffer{}),
		DB:   &fakeBeginner{tx: tx},
	}
}

func priceTable(prices map[string]string) func(sql string, args []any) ([][]any, error) {
	return func(sql string, args []any) ([][]any, error) {
		if strings.Contains(sql, "SELECT price FROM Catalog") {
			if p, ok := prices[args[0].(string)]; ok {
				return [][]any{{p}}, nil
			}
			return nil, nil
		}
		return nil, nil
	}
}

func TestPlaceOrder(t *testing.T) {
	tx := &fakeTx{fakeDB: fakeDB{queryFn: priceTable(map[string]string{
		"g1": "10.00",
		"g2": "5.00",
	})}}
	repo := newOrderRepo(tx)

	orderID, trackingID, total, err := repo.PlaceOrder(context.Background(), "alice",
		[]OrderLine{{GameID: "g1", Units: 2}, {GameID: "g2", Units: 1}})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if total != 25.00 {
		t.Errorf("total = %v, want 25.00", total)
	}
	if !strings.HasPrefix(orderID, "RO-") {
		t.Errorf("order ID %q lacks RO- prefix", orderID)
	}
	if !strings.HasPrefix(trackingID, "T-") {
		t.Errorf("tracking ID %q lacks T- prefix", trackingID)
	}
	if !tx.committed {
		t.Fatal("transaction was not committed")
	}
	if tx.rolledBack {
		t.Fatal("committed transaction was rolled back")
	}

	// one order insert, two line items, one tracking row, in that order
	if len(tx.execs) != 4 {
		t.Fatalf("got %d statements, want 4: %v", len(tx.execs), tx.execs)
	}
	if !strings.Contains(tx.execs[0].sql, "INSERT INTO RentalOrder") {
		t.Errorf("statement 0 = %q, want order insert", tx.execs[0].sql)
	}
	if got := tx.execs[0].args; got[1] != "alice" || got[2] != 2 || got[3] != 25.00 {
		t.Errorf("order insert args = %v", got)
	}
	for i := 1; i <= 2; i++ {
		if !strings.Contains(tx.execs[i].sql, "INSERT INTO GamesInOrder") {
			t.Errorf("statement %d = %q, want line-item insert", i, tx.execs[i].sql)
		}
		if tx.execs[i].args[0] != orderID {
			t.Errorf("line item %d bound to %v, want %s", i, tx.execs[i].args[0], orderID)
		}
	}
	if !strings.Contains(tx.execs[3].sql, "INSERT INTO TrackingInfo") {
		t.Errorf("statement 3 = %q, want tracking insert", tx.execs[3].sql)
	}
	tr := tx.execs[3].args
	if tr[0] != trackingID || tr[1] != orderID || tr[2] != StatusProcessing || tr[3] != "Warehouse" {
		t.Errorf("tracking insert args = %v", tr)
	}
}

func TestPlaceOrderUnknownGameRollsBack(t *testing.T) {
	tx := &fakeTx{fakeDB: fakeDB{queryFn: priceTable(map[string]string{"g1": "10.00"})}}
	repo := newOrderRepo(tx)

	_, _, _, err := repo.PlaceOrder(context.Background(), "alice",
		[]OrderLine{{GameID: "missing", Units: 1}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if tx.committed {
		t.Error("failed order was committed")
	}
	if !tx.rolledBack {
		t.Error("failed order was not rolled back")
	}
	if len(tx.execs) != 0 {
		t.Errorf("statements were issued for a failed order: %v", tx.execs)
	}
}

func TestPlaceOrderInsertFailureRollsBack(t *testing.T) {
	boom := errors.New("deadlock detected")
	tx := &fakeTx{fakeDB: fakeDB{
		queryFn: priceTable(map[string]string{"g1": "10.00"}),
		execFn: func(sql string, args []any) error {
			if strings.Contains(sql, "GamesInOrder") {
				return boom
			}
			return nil
		},
	}}
	repo := newOrderRepo(tx)

	_, _, _, err := repo.PlaceOrder(context.Background(), "alice",
		[]OrderLine{{GameID: "g1", Units: 1}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if tx.committed {
		t.Error("partial order was committed")
	}
	if !tx.rolledBack {
		t.Error("partial order was not rolled back")
	}
}

func TestPlaceOrderRejectsBadUnits(t *testing.T) {
	tx := &fakeTx{}
	repo := newOrderRepo(tx)

	if _, _, _, err := repo.PlaceOrder(context.Background(), "alice",
		[]OrderLine{{GameID: "g1", Units: 0}}); err == nil {
		t.Error("zero units accepted")
	}
	if _, _, _, err := repo.PlaceOrder(context.Background(), "alice", nil); err == nil {
		t.Error("empty order accepted")
	}
}

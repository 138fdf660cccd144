package rental

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaronlin79/game-rental-system/internal/sqlexec"
)

// Tx is the slice of pgx.Tx the order workflow needs.
type Tx interface {
	sqlexec.Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Beginner starts transactions; satisfied by the pool through
// poolBeginner.
type Beginner interface {
	Begin(ctx context.Context) (Tx, error)
}

type poolBeginner struct{ pool *pgxpool.Pool }

func (b poolBeginner) Begin(ctx context.Context) (Tx, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// PlaceOrder books an order for login: one RentalOrder row, one
// GamesInOrder row per line, and one TrackingInfo row with the initial
// status, all inside a single transaction so a mid-sequence failure
// cannot leave an order without tracking. Prices are read inside the
// same transaction and totalPrice is the sum of price*units over the
// lines. Due date is seven days out.
func (r *Repo) PlaceOrder(ctx context.Context, login string, lines []OrderLine) (orderID, trackingID string, total float64, err error) {
	if len(lines) == 0 {
		return "", "", 0, fmt.Errorf("order needs at least one game")
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return "", "", 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	exec := sqlexec.New(tx, r.Exec.Out)

	for _, ln := range lines {
		if ln.Units <= 0 {
			return "", "", 0, fmt.Errorf("invalid units for game %s", ln.GameID)
		}
		rows, err := exec.QueryRows(ctx, `SELECT price FROM Catalog WHERE gameID = $1`, ln.GameID)
		if err != nil {
			return "", "", 0, err
		}
		if len(rows) == 0 {
			return "", "", 0, fmt.Errorf("game %s: %w", ln.GameID, ErrNotFound)
		}
		price, err := strconv.ParseFloat(rows[0][0], 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("game %s price: %w", ln.GameID, err)
		}
		total += price * float64(ln.Units)
	}

	orderID = "RO-" + uuid.NewString()
	trackingID = "T-" + uuid.NewString()

	if err := exec.Execute(ctx,
		`INSERT INTO RentalOrder (rentalOrderID, login, noOfGames, totalPrice, orderTimestamp, dueDate) VALUES ($1, $2, $3, $4, current_timestamp, current_timestamp + interval '7 days')`,
		orderID, login, len(lines), total); err != nil {
		return "", "", 0, err
	}
	for _, ln := range lines {
		if err := exec.Execute(ctx,
			`INSERT INTO GamesInOrder (rentalOrderID, gameID, unitsOrdered) VALUES ($1, $2, $3)`,
			orderID, ln.GameID, ln.Units); err != nil {
			return "", "", 0, err
		}
	}
	if err := exec.Execute(ctx,
		`INSERT INTO TrackingInfo (trackingID, rentalOrderID, status, currentLocation, courierName, additionalComments, lastUpdateDate) VALUES ($1, $2, $3, $4, $5, '', current_timestamp)`,
		trackingID, orderID, StatusProcessing, initialLocation, initialCourier); err != nil {
		return "", "", 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", "", 0, err
	}
	return orderID, trackingID, total, nil
}

// OrderOwner resolves the login an order belongs to, for the customer
// ownership checks on order and tracking lookups.
func (r *Repo) OrderOwner(ctx context.Context, rentalOrderID string) (string, error) {
	rows, err := r.Exec.QueryRows(ctx, `SELECT login FROM RentalOrder WHERE rentalOrderID = $1`, rentalOrderID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("order %s: %w", rentalOrderID, ErrNotFound)
	}
	return rows[0][0], nil
}

func (r *Repo) PrintAllOrders(ctx context.Context, login string) (int, error) {
	return r.Exec.QueryPrint(ctx, `SELECT * FROM RentalOrder WHERE login = $1`, login)
}

func (r *Repo) PrintRecentOrders(ctx context.Context, login string) (int, error) {
	return r.Exec.QueryPrint(ctx,
		`SELECT * FROM RentalOrder WHERE login = $1 ORDER BY orderTimestamp DESC LIMIT 5`, login)
}

// PrintOrderInfo shows the order joined with its tracking ID, then the
// games in the order as a second result set.
func (r *Repo) PrintOrderInfo(ctx context.Context, rentalOrderID string) (int, error) {
	n, err := r.Exec.QueryPrint(ctx,
		`SELECT R.*, T.trackingID FROM RentalOrder R LEFT JOIN TrackingInfo T ON R.rentalOrderID = T.rentalOrderID WHERE R.rentalOrderID = $1`,
		rentalOrderID)
	if err != nil {
		return n, err
	}
	if _, err := r.Exec.QueryPrint(ctx,
		`SELECT * FROM GamesInOrder WHERE rentalOrderID = $1`, rentalOrderID); err != nil {
		return n, err
	}
	return n, nil
}
